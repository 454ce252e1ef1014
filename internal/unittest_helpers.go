package internal

import (
	"fmt"

	"github.com/go-faker/faker/v4"
)

// RandomWords returns n faked words, duplicates are possible.
func RandomWords(n int) []string {
	res := make([]string, n)
	for i := 0; i < n; i++ {
		res[i] = faker.Word()
	}
	return res
}

// RandomSentenceWords splits a faked sentence into its words, so the
// result shares prefixes more often than RandomWords does.
func RandomSentenceWords() []string {
	quote := struct {
		Sentence string `faker:"sentence"`
	}{}

	err := faker.FakeData(&quote)
	if err != nil {
		fmt.Println(err)
		return nil
	}

	var res []string
	word := make([]rune, 0, 16)
	for _, ch := range quote.Sentence {
		if ch == ' ' || ch == '.' {
			if len(word) > 0 {
				res = append(res, string(word))
				word = word[:0]
			}
			continue
		}
		word = append(word, ch)
	}
	if len(word) > 0 {
		res = append(res, string(word))
	}
	return res
}

// lookupNode returns the node at the end of the path spelled by prefix, if any.
func lookupNode(root *Node, prefix string) (*Node, bool) {
	node := root
	for _, ch := range prefix {
		child, ok := node.getChild(ch)
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}
