package logging

import (
	"log/slog"
	"time"

	"github.com/clinicproject/vetclinic-backend/internal/models"
	"gorm.io/gorm"
)

// StartCleanup deletes system_logs rows older than retentionDays once a day
// until done is closed.
func StartCleanup(db *gorm.DB, retentionDays int, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deleteOlderThan(db, time.Now().AddDate(0, 0, -retentionDays))
			case <-done:
				return
			}
		}
	}()
}

func deleteOlderThan(db *gorm.DB, cutoff time.Time) {
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected, "cutoff", cutoff.Format(time.DateOnly))
	}
}
