package go_prefix_tree

import (
	"context"
	"fmt"
	"io"
)

// errors
var (
	ErrDumpFailed      error = fmt.Errorf("failed to dump the tree")
	ErrLockNotAcquired error = fmt.Errorf("failed to acquire the tree lock")
	ErrUnrecognised    error = fmt.Errorf("unrecognised error")
)

// WalkFn is used when walking the tree. Takes a word, returning if iteration should be terminated.
type WalkFn func(ctx context.Context, word string) bool

// ITree is the single-owner prefix tree. None of its methods are safe for concurrent use.
type ITree interface {
	// Insert adds a word, the empty string included.
	Insert(word string)
	// Search reports whether word was inserted as a whole.
	Search(word string) bool
	// StartsWith reports whether some inserted word has prefix as a prefix, itself included.
	StartsWith(prefix string) bool
	// Walk visits every inserted word in pre-order.
	Walk(ctx context.Context, fn WalkFn)
	// Print writes every inserted word to w, one per line.
	Print(w io.Writer) error
	// PrintRaw writes the full node structure to w, for debugging.
	PrintRaw(w io.Writer) error
}

// ISyncTree guards a whole ITree with a single context-aware lock.
type ISyncTree interface {
	Insert(ctx context.Context, word string) error
	Search(ctx context.Context, word string) (bool, error)
	StartsWith(ctx context.Context, prefix string) (bool, error)
	Print(ctx context.Context, w io.Writer) error
	PrintRaw(ctx context.Context, w io.Writer) error
}

var _ ITree = (*Tree)(nil)
var _ ISyncTree = (*SyncTree)(nil)
