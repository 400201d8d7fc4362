package models

import "time"

// Reminder delivery states.
const (
	ReminderPending   = "pending"
	ReminderDelivered = "delivered"
)

// Reminder is one scheduled notification instruction. Each scheduling pass
// replaces a user's entire pending set, so rows are cheap and disposable.
type Reminder struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	Identifier string    `gorm:"size:36;uniqueIndex;not null" json:"identifier"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	FireAt     time.Time `gorm:"index;not null" json:"fire_at"`
	Title      string    `gorm:"size:128;not null" json:"title"`
	Body       string    `gorm:"size:512;not null" json:"body"`
	Status     string    `gorm:"size:16;not null;default:pending" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
