package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"oporun-backend/models"
	"oporun-backend/utils"

	"github.com/google/uuid"
)

// submissionDocument is the on-disk layout of the flat-file store: the whole
// collection as one JSON array under a single key.
type submissionDocument struct {
	Submissions []models.Submission `json:"submissions"`
}

// FileStore keeps every submission in one JSON file. Each mutating call reads
// the whole document, changes it in memory and rewrites the file. A single
// mutex serializes all access, so count-then-insert and the duplicate check
// are atomic with the write.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if err := utils.EnsureDataDir(path); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

// load reads the document, treating a missing file as an empty collection.
func (s *FileStore) load() (*submissionDocument, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &submissionDocument{Submissions: []models.Submission{}}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var doc submissionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	if doc.Submissions == nil {
		doc.Submissions = []models.Submission{}
	}
	return &doc, nil
}

func (s *FileStore) save(doc *submissionDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode submissions: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) List(_ context.Context) ([]models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Submissions, nil
}

func (s *FileStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return 0, err
	}
	return int64(len(doc.Submissions)), nil
}

func (s *FileStore) Insert(_ context.Context, draft models.SubmissionDraft) (*models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, existing := range doc.Submissions {
		if strings.EqualFold(existing.Email, draft.Email) {
			return nil, ErrDuplicateEmail
		}
	}

	sub := models.Submission{
		ID:             uuid.NewString(),
		Name:           draft.Name,
		Email:          draft.Email,
		Phone:          draft.Phone,
		Experience:     draft.Experience,
		Goals:          draft.Goals,
		Timestamp:      time.Now().UTC(),
		TshirtEligible: len(doc.Submissions) < foundingMemberLimit,
		EmailSent:      false,
	}
	doc.Submissions = append(doc.Submissions, sub)

	if err := s.save(doc); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *FileStore) MarkEmailSent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	for i := range doc.Submissions {
		if doc.Submissions[i].ID == id {
			doc.Submissions[i].EmailSent = true
			return s.save(doc)
		}
	}

	// Not finding the record is non-fatal: the email already went out.
	log.Printf("⚠️  [STORE] markEmailSent: submission %s not found", id)
	return nil
}

func (s *FileStore) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}
	for _, existing := range doc.Submissions {
		if strings.EqualFold(existing.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (s *FileStore) Close() error {
	return nil
}
