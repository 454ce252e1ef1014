package go_prefix_tree

import (
	"context"
	"fmt"
	"io"

	"github.com/datnguyenzzz/nogodb/lib/go-prefix-tree/internal"
)

// SyncTree shares a Tree between goroutines. Every operation holds one
// tree-wide lock for its whole duration, the waiting can be cancelled through ctx.
type SyncTree struct {
	tree *Tree
	lock *internal.CtxLock
}

func NewSyncTree(opts ...OptionFn) *SyncTree {
	return &SyncTree{
		tree: NewTree(opts...),
		lock: internal.NewCtxLock(),
	}
}

func (s *SyncTree) Insert(ctx context.Context, word string) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.lock.Release()

	s.tree.Insert(word)
	return nil
}

func (s *SyncTree) Search(ctx context.Context, word string) (bool, error) {
	if err := s.acquire(ctx); err != nil {
		return false, err
	}
	defer s.lock.Release()

	return s.tree.Search(word), nil
}

func (s *SyncTree) StartsWith(ctx context.Context, prefix string) (bool, error) {
	if err := s.acquire(ctx); err != nil {
		return false, err
	}
	defer s.lock.Release()

	return s.tree.StartsWith(prefix), nil
}

func (s *SyncTree) Print(ctx context.Context, w io.Writer) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.lock.Release()

	return s.tree.Print(w)
}

func (s *SyncTree) PrintRaw(ctx context.Context, w io.Writer) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.lock.Release()

	return s.tree.PrintRaw(w)
}

func (s *SyncTree) acquire(ctx context.Context) error {
	if err := s.lock.AcquireCtx(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrLockNotAcquired, err)
	}
	return nil
}
