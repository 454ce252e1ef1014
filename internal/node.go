package internal

// Node is a single trie node. It owns its children exclusively, there are
// no back references and no child is shared between two parents.
type Node struct {
	// children maps a single character to the child node.
	children map[rune]*Node
	// keys keeps the edge characters in creation order, so walks are deterministic.
	keys []rune
	// isTerminal marks that the path from the root spells an inserted word.
	isTerminal bool
	// recordedWords holds the words that created a new branch out of this node
	// at rune index >= recordDepth. Lookups never read it.
	recordedWords []string
	recordedIndex map[string]struct{}
}

func NewNode() *Node {
	return &Node{}
}

func (n *Node) getChild(key rune) (*Node, bool) {
	child, ok := n.children[key]
	return child, ok
}

// addChild creates an empty child under key. The caller makes sure the key doesn't exist yet.
func (n *Node) addChild(key rune) *Node {
	if n.children == nil {
		n.children = make(map[rune]*Node)
	}
	child := NewNode()
	n.children[key] = child
	n.keys = append(n.keys, key)
	return child
}

func (n *Node) getAllChildren() []edge {
	res := make([]edge, 0, len(n.keys))
	for _, k := range n.keys {
		res = append(res, edge{key: k, child: n.children[k]})
	}
	return res
}

func (n *Node) getChildrenLen() int {
	return len(n.keys)
}

func (n *Node) IsTerminal() bool {
	return n.isTerminal
}

func (n *Node) markTerminal() {
	n.isTerminal = true
}

// recordWord adds word to the recorded set, returns false if it was already there.
func (n *Node) recordWord(word string) bool {
	if n.recordedIndex == nil {
		n.recordedIndex = make(map[string]struct{})
	}
	if _, ok := n.recordedIndex[word]; ok {
		return false
	}
	n.recordedIndex[word] = struct{}{}
	n.recordedWords = append(n.recordedWords, word)
	return true
}

// RecordedWords returns a copy of the recorded set in first-insertion order.
func (n *Node) RecordedWords() []string {
	res := make([]string, len(n.recordedWords))
	copy(res, n.recordedWords)
	return res
}

var _ iNodeChildrenManager = (*Node)(nil)
