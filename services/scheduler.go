package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/drinkwise/hydrocoach/models"
	"github.com/drinkwise/hydrocoach/utils"
)

// ReminderScheduler owns the recompute-and-replace synchronization between the
// pacing engine's plan and the stored instruction stream. A pass is idempotent
// for fixed inputs: it always clears the user's pending instructions before
// writing the new ones, both in MySQL and in the Redis pending set the
// dispatcher polls.
type ReminderScheduler struct {
	db *gorm.DB
}

// NewReminderScheduler creates a scheduler bound to the given database handle.
func NewReminderScheduler(db *gorm.DB) *ReminderScheduler {
	return &ReminderScheduler{db: db}
}

// Resync rebuilds today's reminder instructions for the user. Disabled
// reminders or a degenerate wake/sleep schedule clear any existing pending
// instructions and emit nothing, which is the documented no-op path.
func (s *ReminderScheduler) Resync(userID uint, settings models.Settings, todayLog models.DayLog, now time.Time) ([]models.Reminder, error) {
	plan := BuildReminderPlan(settings, todayLog, now, uuid.NewString)

	rows := make([]models.Reminder, 0, len(plan))
	for _, instr := range plan {
		rows = append(rows, models.Reminder{
			Identifier: instr.Identifier,
			UserID:     userID,
			FireAt:     instr.FireAt,
			Title:      instr.Title,
			Body:       instr.Body,
			Status:     models.ReminderPending,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND status = ?", userID, models.ReminderPending).
			Delete(&models.Reminder{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	// Mirror the pending set into Redis for the dispatcher; best-effort.
	utils.ReplacePendingReminders(userID, rows)

	if utils.Sugar != nil {
		utils.Sugar.Debugf("reminder resync user=%d instructions=%d", userID, len(rows))
	}
	return rows, nil
}

// Upcoming returns the user's pending instructions ordered by fire time.
func (s *ReminderScheduler) Upcoming(userID uint) ([]models.Reminder, error) {
	var rows []models.Reminder
	err := s.db.Where("user_id = ? AND status = ?", userID, models.ReminderPending).
		Order("fire_at asc").
		Find(&rows).Error
	return rows, err
}
