package workers

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"oporun-backend/services"
	"oporun-backend/storage"

	"github.com/go-co-op/gocron/v2"
)

// SignupDigestWorker periodically counts submissions and reports the delta to
// the team: always to the log, and by email when TEAM_NOTIFICATION_EMAIL is
// configured. Best-effort only — a failed digest is retried implicitly on the
// next tick because lastTotal only advances on a successful count.
type SignupDigestWorker struct {
	Store     storage.SubmissionStore
	Mailer    *services.ResendMailer
	lastTotal int64
	scheduler gocron.Scheduler
}

func NewSignupDigestWorker(store storage.SubmissionStore, mailer *services.ResendMailer) *SignupDigestWorker {
	return &SignupDigestWorker{Store: store, Mailer: mailer}
}

func digestInterval() time.Duration {
	minutes := 60
	if raw := os.Getenv("SIGNUP_DIGEST_MINUTES"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			minutes = v
		} else {
			log.Printf("⚠️  [DIGEST] invalid SIGNUP_DIGEST_MINUTES %q, using %d", raw, minutes)
		}
	}
	return time.Duration(minutes) * time.Minute
}

func (w *SignupDigestWorker) Start(ctx context.Context) {
	// Seed the baseline so the first digest only covers signups that arrive
	// after startup.
	if total, err := w.Store.Count(ctx); err == nil {
		w.lastTotal = total
	} else {
		log.Printf("⚠️  [DIGEST] failed to read initial count: %v", err)
	}

	sched, _ := gocron.NewScheduler()
	w.scheduler = sched
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(digestInterval()),
		gocron.NewTask(func() {
			w.tick(ctx)
		}),
	)
}

func (w *SignupDigestWorker) tick(ctx context.Context) {
	total, err := w.Store.Count(ctx)
	if err != nil {
		log.Printf("❌ [DIGEST] failed to count submissions: %v", err)
		return
	}

	newCount := total - w.lastTotal
	if newCount <= 0 {
		log.Printf("➡️  [DIGEST] No new signups (total %d)", total)
		w.lastTotal = total
		return
	}

	log.Printf("📥 [DIGEST] %d new signup(s), %d total", newCount, total)

	if result := w.Mailer.SendTeamDigest(ctx, newCount, total); !result.Success {
		log.Printf("⚠️  [DIGEST] team notification not sent: %s", result.Error)
	}
	w.lastTotal = total
}

func (w *SignupDigestWorker) Stop() {
	if w.scheduler != nil {
		_ = w.scheduler.Shutdown()
	}
}
