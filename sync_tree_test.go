package go_prefix_tree

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func Test_SyncTree_Sync(t *testing.T) {
	ctx := context.Background()
	tree := NewSyncTree()
	for _, w := range demoWords {
		require.NoError(t, tree.Insert(ctx, w))
	}

	found, err := tree.Search(ctx, "there")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = tree.Search(ctx, "ther")
	require.NoError(t, err)
	assert.False(t, found)

	found, err = tree.StartsWith(ctx, "ther")
	require.NoError(t, err)
	assert.True(t, found)

	buf := new(bytes.Buffer)
	require.NoError(t, tree.PrintRaw(ctx, buf))
	assert.Equal(t, demoRawDump, buf.String())

	buf.Reset()
	require.NoError(t, tree.Print(ctx, buf))
	assert.Equal(t, "the\nthere\ntheir\na\nany\nanswer\nby\nbye\n", buf.String())

	assert.ErrorIs(t, tree.Print(ctx, brokenWriter{}), ErrDumpFailed)
}

func Test_SyncTree_Async(t *testing.T) {
	type param struct {
		desc                 string
		writers, wordsPerWrt int
	}

	testList := []param{
		{"small load", 2, 10},
		{"medium load", 20, 100},
		{"big load", 100, 200},
	}

	for _, tc := range testList {
		t.Run(tc.desc, func(t *testing.T) {
			tree := NewSyncTree()

			eg, ctx := errgroup.WithContext(context.Background())
			for i := 0; i < tc.writers; i++ {
				i := i
				eg.Go(func() error {
					for j := 0; j < tc.wordsPerWrt; j++ {
						// writers share their prefixes, so they race on the same parents
						word := fmt.Sprintf("w%d-%d", j, i)
						if err := tree.Insert(ctx, word); err != nil {
							return err
						}
						found, err := tree.Search(ctx, word)
						if err != nil {
							return err
						}
						if !found {
							return fmt.Errorf("word %q is lost", word)
						}
					}
					return nil
				})
			}
			require.NoError(t, eg.Wait())

			for i := 0; i < tc.writers; i++ {
				for j := 0; j < tc.wordsPerWrt; j++ {
					found, err := tree.Search(context.Background(), fmt.Sprintf("w%d-%d", j, i))
					require.NoError(t, err)
					assert.True(t, found)
				}
			}
		})
	}
}

func Test_SyncTree_Cancellation(t *testing.T) {
	tree := NewSyncTree()
	require.NoError(t, tree.Insert(context.Background(), "held"))

	// hold the lock as a long running operation would
	require.NoError(t, tree.lock.AcquireCtx(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := tree.Insert(ctx, "blocked")
	assert.ErrorIs(t, err, ErrLockNotAcquired)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = tree.Search(ctx, "held")
	assert.ErrorIs(t, err, ErrLockNotAcquired)
	_, err = tree.StartsWith(ctx, "he")
	assert.ErrorIs(t, err, ErrLockNotAcquired)
	assert.ErrorIs(t, tree.PrintRaw(ctx, new(bytes.Buffer)), ErrLockNotAcquired)

	tree.lock.Release()

	found, err := tree.Search(context.Background(), "blocked")
	require.NoError(t, err)
	assert.False(t, found, "a cancelled insertion must not reach the tree")
}
