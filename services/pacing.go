package services

import (
	"fmt"
	"time"

	"github.com/drinkwise/hydrocoach/models"
)

// Frequency bounds for the adaptive branches, in minutes.
const (
	minBehindFrequency = 30
	maxAheadFrequency  = 180
	minFrequency       = 15
)

// Pace thresholds shared by frequency adjustment and message selection.
const (
	behindFactor = 0.7
	aheadFactor  = 1.3
)

const reminderTitle = "Hydration reminder"

const startOfDayMessage = "Start your day with a glass of water to support focus, energy, and mood."

// ReminderInstruction is one (fire time, content) pair handed to the
// notification collaborator.
type ReminderInstruction struct {
	Identifier string    `json:"identifier"`
	FireAt     time.Time `json:"fire_at"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
}

// ExpectedProgressFraction models the assumption that intake should track
// linearly across waking hours. Returns 0 before wake or when the schedule is
// degenerate (sleep not after wake), 1 after sleep, and the linear fraction in
// between, clamped to [0, 1].
func ExpectedProgressFraction(settings models.Settings, now time.Time) float64 {
	wake := settings.WakeInstant(now)
	sleep := settings.SleepInstant(now)

	if wake.IsZero() || sleep.IsZero() || !sleep.After(wake) {
		return 0
	}
	if !now.After(wake) {
		return 0
	}
	if !now.Before(sleep) {
		return 1
	}

	span := sleep.Sub(wake).Seconds()
	elapsed := now.Sub(wake).Seconds()
	fraction := elapsed / span
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}

// AdjustedFrequencyMinutes adapts the base reminder interval to how far the
// user is from the expected pace: clearly behind fires ~50% more often,
// clearly ahead backs off by ~50%, otherwise the base interval stands.
// The result never drops below 15 minutes.
func AdjustedFrequencyMinutes(baseFrequency int, settings models.Settings, todayLog models.DayLog, now time.Time) int {
	expected := ExpectedProgressFraction(settings, now)
	current := todayLog.Progress()
	if current > 1 {
		current = 1
	}

	frequency := baseFrequency
	if current < expected*behindFactor {
		frequency = int(float64(baseFrequency) * 0.66)
		if frequency < minBehindFrequency {
			frequency = minBehindFrequency
		}
	} else if current > max(expected, 0.2)*aheadFactor {
		frequency = int(float64(baseFrequency) * 1.5)
		if frequency > maxAheadFrequency {
			frequency = maxAheadFrequency
		}
	}

	if frequency < minFrequency {
		return minFrequency
	}
	return frequency
}

// ReminderMessage picks the notification body for the current pace. The
// pre-wake window (expected == 0) gets a fixed start-of-day prompt.
func ReminderMessage(currentProgress, expectedProgress float64) string {
	percent := int(currentProgress * 100)

	if expectedProgress == 0 {
		return startOfDayMessage
	}

	if currentProgress < expectedProgress*behindFactor {
		return fmt.Sprintf("You're a bit behind your hydration pace today. A quick glass now can help you catch up (%d%% of your goal).", percent)
	}
	if currentProgress > expectedProgress*aheadFactor {
		return fmt.Sprintf("You're ahead of your usual pace (%d%% of your goal). Nice work, stay steady with small sips.", percent)
	}
	return fmt.Sprintf("You're roughly on track for your hydration goal (%d%%). A glass now keeps your pace comfortable.", percent)
}

// BuildReminderPlan produces the full instruction stream for today. Frequency
// and body are computed once per pass, not per step; the notification layer
// cannot update already-scheduled content, so each pass snapshots the current
// pace and replaces everything. Instructions whose fire time is not strictly
// in the future are dropped. A disabled or degenerate schedule yields an empty
// plan, which is a deliberate no-op rather than an error.
func BuildReminderPlan(settings models.Settings, todayLog models.DayLog, now time.Time, newID func() string) []ReminderInstruction {
	if !settings.RemindersEnabled {
		return nil
	}

	wake := settings.WakeInstant(now)
	sleep := settings.SleepInstant(now)
	if wake.IsZero() || sleep.IsZero() || !sleep.After(wake) {
		return nil
	}

	frequency := AdjustedFrequencyMinutes(settings.ReminderFrequencyMinutes, settings, todayLog, now)
	expected := ExpectedProgressFraction(settings, now)
	current := todayLog.Progress()
	if current > 1 {
		current = 1
	}
	body := ReminderMessage(current, expected)

	step := time.Duration(frequency) * time.Minute
	var plan []ReminderInstruction
	for fireAt := wake; fireAt.Before(sleep); fireAt = fireAt.Add(step) {
		if !fireAt.After(now) {
			continue
		}
		plan = append(plan, ReminderInstruction{
			Identifier: newID(),
			FireAt:     fireAt,
			Title:      reminderTitle,
			Body:       body,
		})
	}
	return plan
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
