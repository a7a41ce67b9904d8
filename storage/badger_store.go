package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"oporun-backend/models"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// submissionsKey holds the whole collection as one JSON array, mirroring the
// flat-file layout inside a managed key-value store.
var submissionsKey = []byte("signups/submissions")

// BadgerStore keeps the submission collection under a single key in an
// embedded badger database. Every mutation runs read-modify-write inside one
// badger update transaction, so the duplicate check and the pre-insert count
// are atomic with the write.
type BadgerStore struct {
	db *badger.DB
}

func NewBadgerStore(dir string) (*BadgerStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	opts := badger.DefaultOptions(dir).
		// The default INFO logging is a bit verbose
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %s: %w", dir, err)
	}
	return &BadgerStore{db: db}, nil
}

// readSubmissions loads the collection within a transaction, treating a
// missing key as an empty collection.
func readSubmissions(txn *badger.Txn) ([]models.Submission, error) {
	item, err := txn.Get(submissionsKey)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return []models.Submission{}, nil
		}
		return nil, err
	}

	var subs []models.Submission
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &subs)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode submissions: %w", err)
	}
	if subs == nil {
		subs = []models.Submission{}
	}
	return subs, nil
}

func writeSubmissions(txn *badger.Txn, subs []models.Submission) error {
	data, err := json.Marshal(subs)
	if err != nil {
		return fmt.Errorf("failed to encode submissions: %w", err)
	}
	return txn.Set(submissionsKey, data)
}

func (s *BadgerStore) List(_ context.Context) ([]models.Submission, error) {
	var subs []models.Submission
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		subs, err = readSubmissions(txn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *BadgerStore) Count(ctx context.Context) (int64, error) {
	subs, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(subs)), nil
}

func (s *BadgerStore) Insert(_ context.Context, draft models.SubmissionDraft) (*models.Submission, error) {
	var sub models.Submission
	err := s.db.Update(func(txn *badger.Txn) error {
		subs, err := readSubmissions(txn)
		if err != nil {
			return err
		}

		for _, existing := range subs {
			if strings.EqualFold(existing.Email, draft.Email) {
				return ErrDuplicateEmail
			}
		}

		sub = models.Submission{
			ID:             uuid.NewString(),
			Name:           draft.Name,
			Email:          draft.Email,
			Phone:          draft.Phone,
			Experience:     draft.Experience,
			Goals:          draft.Goals,
			Timestamp:      time.Now().UTC(),
			TshirtEligible: len(subs) < foundingMemberLimit,
			EmailSent:      false,
		}
		return writeSubmissions(txn, append(subs, sub))
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *BadgerStore) MarkEmailSent(_ context.Context, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		subs, err := readSubmissions(txn)
		if err != nil {
			return err
		}

		for i := range subs {
			if subs[i].ID == id {
				subs[i].EmailSent = true
				return writeSubmissions(txn, subs)
			}
		}

		log.Printf("⚠️  [STORE] markEmailSent: submission %s not found", id)
		return nil
	})
}

func (s *BadgerStore) EmailExists(ctx context.Context, email string) (bool, error) {
	subs, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, existing := range subs {
		if strings.EqualFold(existing.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
