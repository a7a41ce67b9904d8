package models

import (
	"time"
)

// Submission is one persisted signup record from the promotional form.
// TshirtEligible is computed once at insert time and never revisited;
// EmailSent flips false→true at most once, after a successful confirmation
// email for this record.
type Submission struct {
	ID         string `gorm:"primaryKey;type:uuid" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"not null" json:"email"`
	Phone      string `json:"phone"`
	Experience string `gorm:"not null" json:"experience"`
	Goals      string `json:"goals"`

	// EmailLower backs the case-insensitive uniqueness constraint in the
	// relational store. The file and badger stores compare with
	// strings.EqualFold instead and never persist it.
	EmailLower string `gorm:"column:email_lower;uniqueIndex;not null" json:"-"`

	Timestamp      time.Time `gorm:"column:timestamp;not null" json:"timestamp"`
	TshirtEligible bool      `gorm:"column:tshirt_eligible" json:"tshirtEligible"`
	EmailSent      bool      `gorm:"column:email_sent" json:"emailSent"`
}

func (Submission) TableName() string {
	return "signups"
}

// SubmissionDraft is the client-supplied part of a signup. Everything else
// (id, timestamp, eligibility, email-sent flag) is assigned by the store.
type SubmissionDraft struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Experience string `json:"experience"`
	Goals      string `json:"goals"`
}
