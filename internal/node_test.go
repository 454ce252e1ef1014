package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Node_Children(t *testing.T) {
	n := NewNode()
	assert.Zero(t, n.getChildrenLen())
	assert.False(t, n.IsTerminal())

	_, ok := n.getChild('x')
	assert.False(t, ok, "lookup on a fresh node must not find anything")

	keys := []rune{'z', 'a', 'ü', 'm'}
	added := make(map[rune]*Node)
	for _, k := range keys {
		added[k] = n.addChild(k)
	}
	assert.Equal(t, len(keys), n.getChildrenLen())

	for i, e := range n.getAllChildren() {
		assert.Equal(t, keys[i], e.key, "children must keep the creation order")
		assert.Same(t, added[e.key], e.child)

		child, ok := n.getChild(e.key)
		assert.True(t, ok)
		assert.Same(t, added[e.key], child)
	}
}

func Test_Node_RecordWord(t *testing.T) {
	n := NewNode()
	assert.Empty(t, n.RecordedWords())

	assert.True(t, n.recordWord("answer"))
	assert.True(t, n.recordWord("any"))
	assert.False(t, n.recordWord("answer"), "recorded words are a set")
	assert.Equal(t, []string{"answer", "any"}, n.RecordedWords())

	// the returned slice is a copy
	words := n.RecordedWords()
	words[0] = "mutated"
	assert.Equal(t, []string{"answer", "any"}, n.RecordedWords())
}
