package internal

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// InsertWord adds word to the tree rooted at root and returns the number of
// newly created nodes and the number of branch recordings it triggered.
//
//	root: The root node, it represents the empty prefix
//	word: Any string, the empty one only marks the root as terminal
//
// When a child for the rune at index i doesn't exist yet, it is created and,
// if i >= recordDepth, the whole word is recorded on the node being branched
// from (not on the new child).
func InsertWord(root *Node, word string) (created int, recorded int) {
	node := root
	idx := 0
	for _, ch := range word {
		child, ok := node.getChild(ch)
		if !ok {
			child = node.addChild(ch)
			created++
			if idx >= recordDepth && node.recordWord(word) {
				recorded++
			}
		}
		node = child
		idx++
	}

	node.markTerminal()
	return created, recorded
}

// Find walks the path spelled by word and reports whether it is accepted.
//
//	requireTerminal: true for an exact match, the last node must be a terminal one.
//	false for a prefix match, the existence of the path is enough.
func Find(root *Node, word string, requireTerminal bool) bool {
	node := root
	for _, ch := range word {
		child, ok := node.getChild(ch)
		if !ok {
			return false
		}
		node = child
	}

	if requireTerminal {
		return node.isTerminal
	}
	return true
}

// Walk iterates over all terminal words in pre-order and triggers the callback function.
// Siblings are visited in the order their edges were created.
func Walk(ctx context.Context, root *Node, cb WordCallback) {
	if root == nil {
		return
	}

	type frame struct {
		node   *Node
		prefix string
	}

	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node.isTerminal {
			if stop := cb(ctx, top.prefix); stop {
				return
			}
		}

		children := top.node.getAllChildren()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				node:   children[i].child,
				prefix: top.prefix + string(children[i].key),
			})
		}
	}
}

// WriteWords writes every terminal word into w, one per line.
func WriteWords(ctx context.Context, root *Node, w io.Writer) error {
	var err error
	Walk(ctx, root, func(ctx context.Context, word string) bool {
		_, err = fmt.Fprintln(w, word)
		return err != nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", WriteFailed, err)
	}
	return nil
}

// WriteRaw dumps every node into w. A node opens with its indented path and
// recorded words, then its children follow with a deeper indentation, and the
// node closes after its whole subtree, tagged when it is a word.
//
// Dumping a tree holding "by" and "bye":
//
//	: {[]
//	  b: {[]
//	  b  y: {[bye]
//	  b  y  e: {[]
//	  b  y  e} (word)
//	  b  y} (word)
//	  b}
//	}
func WriteRaw(ctx context.Context, root *Node, w io.Writer) error {
	if root == nil {
		return nil
	}

	type frame struct {
		node    *Node
		prefix  string
		closing bool
	}

	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.closing {
			line := top.prefix + "}"
			if top.node.isTerminal {
				line += " (word)"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return fmt.Errorf("%w: %v", WriteFailed, err)
			}
			continue
		}

		line := top.prefix + ": {[" + strings.Join(top.node.recordedWords, ",") + "]"
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("%w: %v", WriteFailed, err)
		}

		stack = append(stack, frame{node: top.node, prefix: top.prefix, closing: true})
		children := top.node.getAllChildren()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				node:   children[i].child,
				prefix: top.prefix + "  " + string(children[i].key),
			})
		}
	}

	return nil
}
