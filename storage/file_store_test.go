package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"oporun-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDraft(email string) models.SubmissionDraft {
	return models.SubmissionDraft{
		Name:       "Joao Silva",
		Email:      email,
		Experience: "beginner",
	}
}

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "submissions.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	return store, path
}

func TestFileStoreEmptyWhenFileMissing(t *testing.T) {
	store, path := newTestFileStore(t)
	ctx := context.Background()

	subs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, subs)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Reads alone never create the file.
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreInsertAssignsServerFields(t *testing.T) {
	store, _ := newTestFileStore(t)
	ctx := context.Background()

	sub, err := store.Insert(ctx, models.SubmissionDraft{
		Name:       "Maria",
		Email:      "maria@example.com",
		Phone:      "+351 912 345 678",
		Experience: "intermediate",
		Goals:      "first marathon",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, sub.ID)
	assert.False(t, sub.Timestamp.IsZero())
	assert.True(t, sub.TshirtEligible)
	assert.False(t, sub.EmailSent)
	assert.Equal(t, "maria@example.com", sub.Email)
}

func TestFileStoreEligibilityWindow(t *testing.T) {
	store, _ := newTestFileStore(t)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		sub, err := store.Insert(ctx, testDraft(fmt.Sprintf("runner%d@example.com", i)))
		require.NoError(t, err)
		assert.True(t, sub.TshirtEligible, "submission %d should be eligible", i)
	}

	sub, err := store.Insert(ctx, testDraft("runner20@example.com"))
	require.NoError(t, err)
	assert.False(t, sub.TshirtEligible, "21st submission must not be eligible")

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 21, count)
}

func TestFileStoreDuplicateEmailCaseInsensitive(t *testing.T) {
	store, _ := newTestFileStore(t)
	ctx := context.Background()

	_, err := store.Insert(ctx, testDraft("a@x.com"))
	require.NoError(t, err)

	_, err = store.Insert(ctx, testDraft("A@X.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	exists, err := store.EmailExists(ctx, "A@X.COM")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.EmailExists(ctx, "b@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestFileStoreMarkEmailSent(t *testing.T) {
	store, _ := newTestFileStore(t)
	ctx := context.Background()

	sub, err := store.Insert(ctx, testDraft("a@x.com"))
	require.NoError(t, err)
	assert.False(t, sub.EmailSent)

	require.NoError(t, store.MarkEmailSent(ctx, sub.ID))

	subs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.True(t, subs[0].EmailSent)

	// Unknown id is a logged no-op, not an error.
	require.NoError(t, store.MarkEmailSent(ctx, "does-not-exist"))
}

func TestFileStoreReopenPreservesOrder(t *testing.T) {
	store, path := newTestFileStore(t)
	ctx := context.Background()

	emails := []string{"first@x.com", "second@x.com", "third@x.com"}
	for _, email := range emails {
		_, err := store.Insert(ctx, testDraft(email))
		require.NoError(t, err)
	}

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	subs, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, len(emails))
	for i, email := range emails {
		assert.Equal(t, email, subs[i].Email)
	}
}
