package models

import (
	"fmt"
	"time"
)

// ReminderFrequencies is the fixed set of base reminder intervals the client offers.
var ReminderFrequencies = []int{60, 90, 120}

// Settings stores per-user hydration preferences. Wake and sleep times keep only
// their hour/minute component, encoded as "HH:MM"; they are combined with the
// current date when a schedule is built.
type Settings struct {
	ID                       uint      `gorm:"primaryKey" json:"id"`
	UserID                   uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	WeightUnit               string    `gorm:"size:8;not null" json:"weight_unit"`
	DailyGoalMl              int       `gorm:"not null" json:"daily_goal_ml"`
	RemindersEnabled         bool      `gorm:"default:false" json:"reminders_enabled"`
	ReminderFrequencyMinutes int       `gorm:"not null" json:"reminder_frequency_minutes"`
	WakeTime                 string    `gorm:"size:5;not null" json:"wake_time"`
	SleepTime                string    `gorm:"size:5;not null" json:"sleep_time"`
	BottleSizeOz             *float64  `json:"bottle_size_oz,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// ValidReminderFrequency reports whether minutes is one of the offered intervals.
func ValidReminderFrequency(minutes int) bool {
	for _, f := range ReminderFrequencies {
		if f == minutes {
			return true
		}
	}
	return false
}

// ParseClockTime validates an "HH:MM" string and returns its components.
func ParseClockTime(s string) (hour, minute int, err error) {
	if _, err := time.Parse("15:04", s); err != nil {
		return 0, 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	fmt.Sscanf(s, "%d:%d", &hour, &minute)
	return hour, minute, nil
}

// WakeInstant combines the stored wake time with day's date in day's location.
// Returns the zero time when the stored value does not parse.
func (s Settings) WakeInstant(day time.Time) time.Time {
	return clockOn(day, s.WakeTime)
}

// SleepInstant combines the stored sleep time with day's date in day's location.
func (s Settings) SleepInstant(day time.Time) time.Time {
	return clockOn(day, s.SleepTime)
}

func clockOn(day time.Time, clock string) time.Time {
	hour, minute, err := ParseClockTime(clock)
	if err != nil {
		return time.Time{}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}
