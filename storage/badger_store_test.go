package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBadgerStore(t *testing.T) *BadgerStore {
	t.Helper()
	store, err := NewBadgerStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestBadgerStoreStartsEmpty(t *testing.T) {
	store := newTestBadgerStore(t)
	ctx := context.Background()

	subs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, subs)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBadgerStoreEligibilityWindow(t *testing.T) {
	store := newTestBadgerStore(t)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		sub, err := store.Insert(ctx, testDraft(fmt.Sprintf("runner%d@example.com", i)))
		require.NoError(t, err)
		assert.True(t, sub.TshirtEligible, "submission %d should be eligible", i)
	}

	sub, err := store.Insert(ctx, testDraft("runner20@example.com"))
	require.NoError(t, err)
	assert.False(t, sub.TshirtEligible, "21st submission must not be eligible")
}

func TestBadgerStoreDuplicateEmailCaseInsensitive(t *testing.T) {
	store := newTestBadgerStore(t)
	ctx := context.Background()

	_, err := store.Insert(ctx, testDraft("a@x.com"))
	require.NoError(t, err)

	_, err = store.Insert(ctx, testDraft("A@X.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	exists, err := store.EmailExists(ctx, "a@X.COM")
	require.NoError(t, err)
	assert.True(t, exists)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestBadgerStoreMarkEmailSent(t *testing.T) {
	store := newTestBadgerStore(t)
	ctx := context.Background()

	sub, err := store.Insert(ctx, testDraft("a@x.com"))
	require.NoError(t, err)

	require.NoError(t, store.MarkEmailSent(ctx, sub.ID))

	subs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.True(t, subs[0].EmailSent)

	require.NoError(t, store.MarkEmailSent(ctx, "does-not-exist"))
}

func TestBadgerStoreReopenPreservesData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewBadgerStore(dir)
	require.NoError(t, err)

	emails := []string{"first@x.com", "second@x.com"}
	for _, email := range emails {
		_, err := store.Insert(ctx, testDraft(email))
		require.NoError(t, err)
	}
	require.NoError(t, store.Close())

	reopened, err := NewBadgerStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	subs, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, len(emails))
	for i, email := range emails {
		assert.Equal(t, email, subs[i].Email)
	}
}
