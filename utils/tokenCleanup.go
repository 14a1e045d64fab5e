package utils

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/rajdwivedi/aeonaxy-server/middleware"
	"github.com/rajdwivedi/aeonaxy-server/store"
)

// logSweeper logs token sweeper events with timestamp
func logSweeper(message string) {
	log.Printf("[TOKEN-SWEEPER %s] %s", time.Now().Format(time.RFC3339), message)
}

// SweepExpiredTokens deletes verification and reset token records older than
// their signed lifetime. The JWTs expire on their own; this keeps the
// credential collections from accumulating dead records.
func SweepExpiredTokens(cred store.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := cred.DeleteMany(ctx, store.EmailVerificationTokens,
		bson.M{"createdAt": bson.M{"$lt": time.Now().Add(-middleware.VerificationTokenTTL)}})
	if err != nil {
		logSweeper("Error sweeping verification tokens: " + err.Error())
	} else if deleted > 0 {
		logSweeper(strconv.FormatInt(deleted, 10) + " expired verification tokens removed")
	}

	deleted, err = cred.DeleteMany(ctx, store.PasswordResetTokens,
		bson.M{"createdAt": bson.M{"$lt": time.Now().Add(-middleware.ResetTokenTTL)}})
	if err != nil {
		logSweeper("Error sweeping reset tokens: " + err.Error())
	} else if deleted > 0 {
		logSweeper(strconv.FormatInt(deleted, 10) + " expired reset tokens removed")
	}
}

// InitializeTokenSweeper starts the hourly token cleanup job.
func InitializeTokenSweeper(cred store.Store) *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() { SweepExpiredTokens(cred) }); err != nil {
		log.Fatalf("Failed to schedule token sweeper: %v", err)
	}
	c.Start()
	logSweeper("Scheduler started")
	return c
}
