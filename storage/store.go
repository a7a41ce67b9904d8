package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"oporun-backend/models"
)

// ErrDuplicateEmail is returned by Insert when a record with the same email
// (case-insensitive) already exists. Every store variant enforces this inside
// Insert itself — under the file mutex, inside the badger transaction, or via
// the unique index in postgres — so the pre-check in the endpoint is only a
// fast path, not the guarantee.
var ErrDuplicateEmail = errors.New("email already registered")

// foundingMemberLimit is the t-shirt promotion window: a submission is
// eligible iff fewer than this many submissions are stored at insert time.
const foundingMemberLimit = 20

// SubmissionStore is the persistence contract behind the signup pipeline.
// List returns submissions in insertion order, oldest first.
type SubmissionStore interface {
	List(ctx context.Context) ([]models.Submission, error)
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, draft models.SubmissionDraft) (*models.Submission, error)
	MarkEmailSent(ctx context.Context, id string) error
	EmailExists(ctx context.Context, email string) (bool, error)
	Close() error
}

// NewFromEnv selects a store variant from SIGNUP_STORE (file|badger|postgres,
// default file) and opens it.
func NewFromEnv() (SubmissionStore, error) {
	variant := os.Getenv("SIGNUP_STORE")
	if variant == "" {
		variant = "file"
	}

	switch variant {
	case "file":
		path := os.Getenv("SUBMISSIONS_FILE")
		if path == "" {
			path = "data/submissions.json"
		}
		log.Printf("📦 [STORE] Using flat-file store at %s", path)
		return NewFileStore(path)
	case "badger":
		dir := os.Getenv("BADGER_DIR")
		if dir == "" {
			dir = "data/badger"
		}
		log.Printf("📦 [STORE] Using badger store at %s", dir)
		return NewBadgerStore(dir)
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return nil, errors.New("DATABASE_URL environment variable not set")
		}
		log.Println("📦 [STORE] Using postgres store")
		return NewPostgresStore(dsn)
	default:
		return nil, fmt.Errorf("unknown SIGNUP_STORE %q (want file, badger or postgres)", variant)
	}
}
