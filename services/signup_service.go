package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"oporun-backend/models"
	"oporun-backend/storage"
	"oporun-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Permissive local@domain.tld check; anything stricter belongs to the email
// provider, which sees the address anyway.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SignupService struct {
	Store  storage.SubmissionStore
	Mailer ConfirmationMailer
}

func NewSignupService(store storage.SubmissionStore, mailer ConfirmationMailer) *SignupService {
	return &SignupService{Store: store, Mailer: mailer}
}

// Signup runs the whole pipeline for one promotional signup:
// validate → duplicate check → persist → locale resolve → confirmation email
// → mark emailSent → respond. No step is ever retried; email failure is
// reported in the response but never fails the signup.
func (s *SignupService) Signup(c *fiber.Ctx) error {
	var draft models.SubmissionDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing required fields",
		})
	}

	draft.Name = strings.TrimSpace(draft.Name)
	draft.Email = strings.TrimSpace(draft.Email)
	draft.Phone = strings.TrimSpace(draft.Phone)
	draft.Experience = strings.TrimSpace(draft.Experience)
	draft.Goals = strings.TrimSpace(draft.Goals)

	if draft.Name == "" || draft.Email == "" || draft.Experience == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing required fields",
		})
	}
	if !emailPattern.MatchString(draft.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid email format",
		})
	}

	ctx := c.UserContext()

	exists, err := s.Store.EmailExists(ctx, draft.Email)
	if err != nil {
		log.Printf("❌ [SIGNUP] duplicate check failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save submission",
		})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"error":   "Email already registered",
		})
	}

	sub, err := s.Store.Insert(ctx, draft)
	if err != nil {
		// The store re-checks under its own lock/constraint, so a racing
		// duplicate lands here instead of double-inserting.
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"error":   "Email already registered",
			})
		}
		log.Printf("❌ [SIGNUP] insert failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save submission",
		})
	}

	locale := ResolveLocale(c.Get(fiber.HeaderAcceptLanguage))

	emailSent := false
	result := s.Mailer.SendConfirmation(ctx, ConfirmationParams{
		Recipient:      sub.Email,
		Name:           sub.Name,
		Locale:         locale,
		TshirtEligible: sub.TshirtEligible,
	})
	if result.Success {
		emailSent = true
		if err := s.Store.MarkEmailSent(ctx, sub.ID); err != nil {
			// Non-fatal: the email went out, only the flag write failed.
			log.Printf("⚠️  [SIGNUP] failed to mark email sent for %s: %v", sub.ID, err)
		}
	} else {
		log.Printf("⚠️  [SIGNUP] confirmation email not sent to %s: %s", sub.Email, result.Error)
	}

	log.Printf("✅ [SIGNUP] %s registered (locale=%s, tshirt=%t, emailSent=%t)",
		sub.Email, locale, sub.TshirtEligible, emailSent)

	return c.JSON(fiber.Map{
		"success":        true,
		"message":        "Signup successful",
		"tshirtEligible": sub.TshirtEligible,
		"emailSent":      emailSent,
	})
}

// ListSubmissions returns every submission, newest first, for the admin
// dashboard.
func (s *SignupService) ListSubmissions(c *fiber.Ctx) error {
	subs, err := s.Store.List(c.UserContext())
	if err != nil {
		log.Printf("❌ [ADMIN] failed to list submissions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load submissions",
		})
	}

	// Store order is oldest-first; the dashboard wants the newest on top.
	for i, j := 0, len(subs)-1; i < j; i, j = i+1, j-1 {
		subs[i], subs[j] = subs[j], subs[i]
	}

	return c.JSON(fiber.Map{
		"submissions": subs,
		"count":       len(subs),
	})
}

// ExportSubmissions snapshots the full submission list as a JSON document in
// the R2 bucket and returns its public URL.
func (s *SignupService) ExportSubmissions(c *fiber.Ctx) error {
	subs, err := s.Store.List(c.UserContext())
	if err != nil {
		log.Printf("❌ [ADMIN] failed to load submissions for export: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load submissions",
		})
	}

	data, err := json.MarshalIndent(fiber.Map{"submissions": subs}, "", "  ")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to encode submissions",
		})
	}

	key := fmt.Sprintf("exports/submissions-%s-%s.json",
		time.Now().UTC().Format("20060102-150405"), uuid.NewString()[:8])

	url, err := utils.UploadBytesToR2(c.UserContext(), data, key, "application/json")
	if err != nil {
		log.Printf("❌ [ADMIN] failed to upload export to R2: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to upload export",
		})
	}

	log.Printf("✅ [ADMIN] exported %d submission(s) to %s", len(subs), key)
	return c.JSON(fiber.Map{
		"url":   url,
		"count": len(subs),
	})
}
