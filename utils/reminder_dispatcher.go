package utils

import (
	"log"
	"time"

	"github.com/drinkwise/hydrocoach/config"
	"github.com/drinkwise/hydrocoach/models"
)

// StartReminderDispatcher launches a background goroutine that periodically
// marks due reminder instructions as delivered. Delivery here hands the
// notification to the device channel and forgets it: there is no confirmation
// and instructions whose fire time already passed at enqueue were never
// persisted in the first place. Best-effort, logs failures.
func StartReminderDispatcher(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		for {
			// Sleep first to avoid racing immediately at startup
			time.Sleep(interval)
			db := config.DB()
			if db == nil {
				continue
			}

			now := time.Now()
			var due []models.Reminder
			if err := db.Where("status = ? AND fire_at <= ?", models.ReminderPending, now).
				Limit(500).Find(&due).Error; err != nil {
				log.Printf("reminder dispatcher query failed: %v", err)
				continue
			}
			if len(due) == 0 {
				continue
			}

			ids := make([]uint, 0, len(due))
			seenUsers := map[uint]bool{}
			for _, r := range due {
				ids = append(ids, r.ID)
				seenUsers[r.UserID] = true
				if Sugar != nil {
					Sugar.Infow("reminder fired",
						"user_id", r.UserID,
						"identifier", r.Identifier,
						"fire_at", r.FireAt,
						"body", r.Body,
					)
				}
			}

			if err := db.Model(&models.Reminder{}).Where("id IN ?", ids).
				Update("status", models.ReminderDelivered).Error; err != nil {
				log.Printf("reminder dispatcher update failed: %v", err)
				continue
			}

			// Drop the fired members from each user's Redis pending set
			for userID := range seenUsers {
				_ = DuePendingReminders(userID, now)
			}
		}
	}()
}
