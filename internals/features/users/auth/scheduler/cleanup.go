package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authRepo "campushub_backend/internals/features/users/auth/repository"
)

// StartTokenCleanupScheduler prunes expired blacklist entries and refresh
// tokens once per interval. It runs for the lifetime of the process.
func StartTokenCleanupScheduler(db *gorm.DB) {
	go func() {
		intervalHours := 24
		if val := os.Getenv("TOKEN_CLEANUP_INTERVAL_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalHours = parsed
			}
		}
		interval := time.Duration(intervalHours) * time.Hour

		for {
			if n, err := authRepo.DeleteExpiredBlacklistedTokens(db); err != nil {
				log.Printf("[CLEANUP ERROR] blacklist prune failed: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] removed %d expired blacklist tokens", n)
			}

			if n, err := authRepo.DeleteExpiredRefreshTokens(db); err != nil {
				log.Printf("[CLEANUP ERROR] refresh token prune failed: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] removed %d expired refresh tokens", n)
			}

			time.Sleep(interval)
		}
	}()
}
