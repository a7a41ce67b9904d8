package storage

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"oporun-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration test; needs a disposable database. Run with e.g.
// TEST_DATABASE_URL=postgres://localhost/oporun_test go test ./storage
func newTestPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	store, err := NewPostgresStore(dsn)
	require.NoError(t, err)
	require.NoError(t, store.DB.Exec("DELETE FROM signups").Error)
	t.Cleanup(func() {
		_ = store.DB.Exec("DELETE FROM signups").Error
		_ = store.Close()
	})
	return store
}

func TestPostgresStoreRoundTrip(t *testing.T) {
	store := newTestPostgresStore(t)
	ctx := context.Background()

	sub, err := store.Insert(ctx, models.SubmissionDraft{
		Name:       "Maria",
		Email:      "Maria@Example.com",
		Experience: "advanced",
	})
	require.NoError(t, err)
	assert.True(t, sub.TshirtEligible)
	assert.False(t, sub.EmailSent)
	assert.WithinDuration(t, time.Now().UTC(), sub.Timestamp, time.Minute)

	// Unique index on email_lower turns the racing duplicate into a
	// conflict instead of a second row.
	_, err = store.Insert(ctx, testDraft("maria@example.COM"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	exists, err := store.EmailExists(ctx, "MARIA@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.MarkEmailSent(ctx, sub.ID))
	require.NoError(t, store.MarkEmailSent(ctx, "00000000-0000-0000-0000-000000000000"))

	subs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.True(t, subs[0].EmailSent)
	assert.Equal(t, "Maria@Example.com", subs[0].Email)
}

func TestPostgresStoreEligibilityWindow(t *testing.T) {
	store := newTestPostgresStore(t)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		sub, err := store.Insert(ctx, testDraft(fmt.Sprintf("runner%d@example.com", i)))
		require.NoError(t, err)
		assert.True(t, sub.TshirtEligible)
	}

	sub, err := store.Insert(ctx, testDraft("runner20@example.com"))
	require.NoError(t, err)
	assert.False(t, sub.TshirtEligible)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 21, count)
}
