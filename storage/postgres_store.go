package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"oporun-backend/models"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgresStore keeps one row per submission in the signups table. Unlike the
// whole-collection variants it has a real uniqueness constraint: email_lower
// carries a unique index and a violation surfaces as ErrDuplicateEmail, so
// concurrent duplicate signups cannot double-insert.
type PostgresStore struct {
	DB *gorm.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.Submission{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &PostgresStore{DB: db}, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]models.Submission, error) {
	var subs []models.Submission
	if err := s.DB.WithContext(ctx).Order("timestamp ASC").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Submission{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *PostgresStore) Insert(ctx context.Context, draft models.SubmissionDraft) (*models.Submission, error) {
	sub := models.Submission{
		ID:         uuid.NewString(),
		Name:       draft.Name,
		Email:      draft.Email,
		Phone:      draft.Phone,
		Experience: draft.Experience,
		Goals:      draft.Goals,
		EmailLower: strings.ToLower(draft.Email),
		Timestamp:  time.Now().UTC(),
		EmailSent:  false,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Submission{}).Count(&count).Error; err != nil {
			return err
		}
		sub.TshirtEligible = count < foundingMemberLimit

		if err := tx.Create(&sub).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEmail
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *PostgresStore) MarkEmailSent(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Model(&models.Submission{}).
		Where("id = ?", id).
		Update("email_sent", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Not finding the record is non-fatal: the email already went out.
		log.Printf("⚠️  [STORE] markEmailSent: submission %s not found", id)
	}
	return nil
}

func (s *PostgresStore) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.Submission{}).
		Where("email_lower = ?", strings.ToLower(email)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
