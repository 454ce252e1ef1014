package go_prefix_tree

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/datnguyenzzz/nogodb/lib/go-prefix-tree/internal"
	"go.uber.org/zap"
)

// Tree is an in-memory prefix tree of words. The root node represents the
// empty prefix and always exists. Nodes are created lazily and never removed.
type Tree struct {
	root *internal.Node
	opts options
}

func NewTree(opts ...OptionFn) *Tree {
	t := &Tree{
		root: internal.NewNode(),
		opts: defaultOptions(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tree) Insert(word string) {
	created, recorded := internal.InsertWord(t.root, word)
	if created > 0 && t.opts.logger.Core().Enabled(zap.DebugLevel) {
		t.opts.logger.Debug("inserted word",
			zap.String("word", word),
			zap.Int("createdNodes", created),
			zap.Int("recordedBranches", recorded),
		)
	}
}

func (t *Tree) Search(word string) bool {
	return internal.Find(t.root, word, true)
}

func (t *Tree) StartsWith(prefix string) bool {
	return internal.Find(t.root, prefix, false)
}

func (t *Tree) Walk(ctx context.Context, fn WalkFn) {
	internal.Walk(ctx, t.root, internal.WordCallback(fn))
}

func (t *Tree) Print(w io.Writer) error {
	err := internal.WriteWords(context.Background(), t.root, w)
	return t.dumpErrorCategorisation("words", err)
}

func (t *Tree) PrintRaw(w io.Writer) error {
	err := internal.WriteRaw(context.Background(), t.root, w)
	return t.dumpErrorCategorisation("raw", err)
}

func (t *Tree) dumpErrorCategorisation(kind string, err error) error {
	if err == nil {
		return nil
	}

	t.opts.logger.Error("failed to dump the tree", zap.String("kind", kind), zap.Error(err))
	if errors.Is(err, internal.WriteFailed) {
		return fmt.Errorf("%w: %v", ErrDumpFailed, err)
	}
	return fmt.Errorf("%w: %v", ErrUnrecognised, err)
}
