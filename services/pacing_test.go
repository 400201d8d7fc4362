package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/drinkwise/hydrocoach/models"
)

func defaultSchedule() models.Settings {
	return models.Settings{
		DailyGoalMl:              2000,
		RemindersEnabled:         true,
		ReminderFrequencyMinutes: 120,
		WakeTime:                 "07:00",
		SleepTime:                "23:00",
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 15, hour, minute, 0, 0, time.Local)
}

func TestExpectedProgressFraction(t *testing.T) {
	settings := defaultSchedule()

	tests := []struct {
		name string
		now  time.Time
		want float64
	}{
		{"exactly at wake", at(7, 0), 0},
		{"before wake", at(6, 30), 0},
		{"exactly at sleep", at(23, 0), 1},
		{"after sleep", at(23, 45), 1},
		{"midpoint of waking hours", at(15, 0), 0.5},
		{"quarter of waking hours", at(11, 0), 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpectedProgressFraction(settings, tt.now)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("ExpectedProgressFraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpectedProgressFractionDegenerateSchedule(t *testing.T) {
	settings := defaultSchedule()
	settings.WakeTime = "22:00"
	settings.SleepTime = "06:00"

	if got := ExpectedProgressFraction(settings, at(12, 0)); got != 0 {
		t.Errorf("ExpectedProgressFraction() with sleep before wake = %v, want 0", got)
	}

	settings.SleepTime = "22:00"
	if got := ExpectedProgressFraction(settings, at(12, 0)); got != 0 {
		t.Errorf("ExpectedProgressFraction() with sleep equal to wake = %v, want 0", got)
	}

	settings = defaultSchedule()
	settings.WakeTime = "not a clock"
	if got := ExpectedProgressFraction(settings, at(12, 0)); got != 0 {
		t.Errorf("ExpectedProgressFraction() with unparseable wake = %v, want 0", got)
	}
}

func TestAdjustedFrequencyMinutes(t *testing.T) {
	settings := defaultSchedule()

	tests := []struct {
		name     string
		base     int
		intakeMl int
		now      time.Time
		want     int
	}{
		// Midpoint of the day, nothing logged: clearly behind.
		{"behind speeds up", 120, 0, at(15, 0), 79},
		{"behind speeds up from 90", 90, 0, at(15, 0), 59},
		{"behind floor at 30", 40, 0, at(15, 0), 30},
		// Early morning at full goal: clearly ahead.
		{"ahead backs off", 120, 2000, at(9, 0), 180},
		{"ahead backs off from 60", 60, 2000, at(9, 0), 90},
		{"ahead capped at 180", 150, 2000, at(9, 0), 180},
		// Intake matching the expected half-day pace keeps the base.
		{"on track keeps base", 120, 1000, at(15, 0), 120},
		// Before wake there is no expected pace to fall behind.
		{"pre-wake keeps base", 120, 0, at(6, 0), 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := models.DayLog{GoalMl: 2000, TotalIntakeMl: tt.intakeMl}
			got := AdjustedFrequencyMinutes(tt.base, settings, log, tt.now)
			if got != tt.want {
				t.Errorf("AdjustedFrequencyMinutes(%d) = %d, want %d", tt.base, got, tt.want)
			}
		})
	}
}

func TestReminderMessage(t *testing.T) {
	if got := ReminderMessage(0.4, 0); got != startOfDayMessage {
		t.Errorf("ReminderMessage() pre-wake = %q, want start-of-day prompt", got)
	}

	tests := []struct {
		name     string
		current  float64
		expected float64
		want     string
	}{
		{
			"behind",
			0.2, 0.5,
			"You're a bit behind your hydration pace today. A quick glass now can help you catch up (20% of your goal).",
		},
		{
			"ahead",
			0.9, 0.5,
			"You're ahead of your usual pace (90% of your goal). Nice work, stay steady with small sips.",
		},
		{
			"on track",
			0.5, 0.5,
			"You're roughly on track for your hydration goal (50%). A glass now keeps your pace comfortable.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReminderMessage(tt.current, tt.expected); got != tt.want {
				t.Errorf("ReminderMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildReminderPlanEmpty(t *testing.T) {
	log := models.DayLog{GoalMl: 2000}
	newID := sequentialIDs()

	disabled := defaultSchedule()
	disabled.RemindersEnabled = false
	if plan := BuildReminderPlan(disabled, log, at(7, 0), newID); len(plan) != 0 {
		t.Errorf("BuildReminderPlan() disabled = %d instructions, want 0", len(plan))
	}

	inverted := defaultSchedule()
	inverted.WakeTime = "23:00"
	inverted.SleepTime = "07:00"
	if plan := BuildReminderPlan(inverted, log, at(7, 0), newID); len(plan) != 0 {
		t.Errorf("BuildReminderPlan() inverted schedule = %d instructions, want 0", len(plan))
	}
}

func TestBuildReminderPlanAtWake(t *testing.T) {
	settings := defaultSchedule()
	log := models.DayLog{GoalMl: 2000}

	plan := BuildReminderPlan(settings, log, at(7, 0), sequentialIDs())

	// Base 120-minute step from 07:00, dropping the slot at now itself.
	wantTimes := []time.Time{
		at(9, 0), at(11, 0), at(13, 0), at(15, 0), at(17, 0), at(19, 0), at(21, 0),
	}
	if len(plan) != len(wantTimes) {
		t.Fatalf("BuildReminderPlan() = %d instructions, want %d", len(plan), len(wantTimes))
	}
	for i, ins := range plan {
		if !ins.FireAt.Equal(wantTimes[i]) {
			t.Errorf("plan[%d].FireAt = %v, want %v", i, ins.FireAt, wantTimes[i])
		}
		if ins.Title != reminderTitle {
			t.Errorf("plan[%d].Title = %q, want %q", i, ins.Title, reminderTitle)
		}
		if ins.Body != startOfDayMessage {
			t.Errorf("plan[%d].Body = %q, want start-of-day prompt", i, ins.Body)
		}
	}
}

func TestBuildReminderPlanBehindPace(t *testing.T) {
	settings := defaultSchedule()
	log := models.DayLog{GoalMl: 2000}

	plan := BuildReminderPlan(settings, log, at(12, 0), sequentialIDs())

	if len(plan) == 0 {
		t.Fatal("BuildReminderPlan() returned no instructions")
	}
	// Behind pace tightens 120 to 79 minutes; the grid still anchors at wake,
	// so the first surviving slot is 12:16 and the last is 22:48.
	if want := at(12, 16); !plan[0].FireAt.Equal(want) {
		t.Errorf("first FireAt = %v, want %v", plan[0].FireAt, want)
	}
	if want := at(22, 48); !plan[len(plan)-1].FireAt.Equal(want) {
		t.Errorf("last FireAt = %v, want %v", plan[len(plan)-1].FireAt, want)
	}
	for i := 1; i < len(plan); i++ {
		if gap := plan[i].FireAt.Sub(plan[i-1].FireAt); gap != 79*time.Minute {
			t.Errorf("gap between plan[%d] and plan[%d] = %v, want 79m", i-1, i, gap)
		}
	}

	seen := make(map[string]bool)
	for _, ins := range plan {
		if ins.FireAt.After(at(23, 0)) || ins.FireAt.Equal(at(23, 0)) {
			t.Errorf("FireAt %v is not before sleep", ins.FireAt)
		}
		if !ins.FireAt.After(at(12, 0)) {
			t.Errorf("FireAt %v is not in the future", ins.FireAt)
		}
		if seen[ins.Identifier] {
			t.Errorf("duplicate identifier %q", ins.Identifier)
		}
		seen[ins.Identifier] = true
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
