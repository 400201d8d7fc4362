package models

import (
	"time"

	"github.com/google/uuid"
)

// MlPerGlass is the display conversion: 1 glass ≈ 8 fl oz ≈ 240 ml.
const MlPerGlass = 240.0

// HydrationEntry is a single logged drink. Entries are append-only and never
// edited or removed once recorded.
type HydrationEntry struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	EntryID   string    `gorm:"size:36;uniqueIndex;not null" json:"id"`
	DayLogID  uint      `gorm:"index;not null" json:"-"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
	AmountMl  int       `gorm:"not null" json:"amount_ml"`
	Note      string    `gorm:"size:255" json:"note,omitempty"`
}

// DayLog accumulates one calendar day of drinks for a user. The goal is
// snapshotted from settings when the log is created, so later goal changes do
// not rewrite history. Invariant: TotalIntakeMl equals the sum of its entries.
type DayLog struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	UserID        uint             `gorm:"index:idx_day_logs_user_date,unique;not null" json:"user_id"`
	Date          time.Time        `gorm:"index:idx_day_logs_user_date,unique;not null" json:"date"`
	GoalMl        int              `gorm:"not null" json:"goal_ml"`
	TotalIntakeMl int              `gorm:"not null;default:0" json:"total_intake_ml"`
	Entries       []HydrationEntry `gorm:"foreignKey:DayLogID" json:"entries"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// Progress returns intake relative to the goal, clamped to [0, 2.0] for
// display. A missing or zero goal yields 0 rather than dividing by zero.
func (l DayLog) Progress() float64 {
	if l.GoalMl <= 0 {
		return 0
	}
	p := float64(l.TotalIntakeMl) / float64(l.GoalMl)
	if p > 2.0 {
		return 2.0
	}
	return p
}

// IsGoalReached reports whether the daily goal has been met.
func (l DayLog) IsGoalReached() bool {
	return l.TotalIntakeMl >= l.GoalMl
}

// Reached80Percent reports whether the day qualifies for streak purposes.
// The threshold is integer-truncated, matching the display math.
func (l DayLog) Reached80Percent() bool {
	return l.TotalIntakeMl >= int(float64(l.GoalMl)*0.8)
}

// TotalGlasses converts intake to display glasses.
func (l DayLog) TotalGlasses() float64 {
	return float64(l.TotalIntakeMl) / MlPerGlass
}

// GoalGlasses converts the goal to display glasses.
func (l DayLog) GoalGlasses() float64 {
	return float64(l.GoalMl) / MlPerGlass
}

// StartOfDay returns the local calendar-day identity of the log. History
// lookups join on this value.
func (l DayLog) StartOfDay() time.Time {
	return StartOfDay(l.Date)
}

// Adding returns a copy of the log with amountMl recorded as a new entry
// stamped with the current time. Callers must reject non-positive amounts
// before calling; the arithmetic here is unconditional.
func (l DayLog) Adding(amountMl int, note string) DayLog {
	copy := l
	copy.TotalIntakeMl += amountMl
	copy.Entries = append(append([]HydrationEntry(nil), l.Entries...), HydrationEntry{
		EntryID:   uuid.NewString(),
		DayLogID:  l.ID,
		Timestamp: time.Now(),
		AmountMl:  amountMl,
		Note:      note,
	})
	return copy
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
