package internal

import (
	"context"
	"fmt"
)

// errors
var (
	WriteFailed error = fmt.Errorf("failed to write")
)

// recordDepth is the smallest rune index at which a first-time branch
// records the inserted word on the node being branched from.
const recordDepth = 2

// WordCallback is triggered for every terminal word met during a walk.
// Returning true stops the walk.
type WordCallback func(ctx context.Context, word string) bool

// iNodeChildrenManager control the node's children
type iNodeChildrenManager interface {
	getChild(key rune) (*Node, bool)
	addChild(key rune) *Node
	// getAllChildren returns the children in the order their edges were created
	getAllChildren() []edge
	getChildrenLen() int
}

type edge struct {
	key   rune
	child *Node
}
