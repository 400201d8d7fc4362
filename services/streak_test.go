package services

import (
	"testing"
	"time"

	"github.com/drinkwise/hydrocoach/models"
)

func dayLogOn(day time.Time, goalMl, intakeMl int) models.DayLog {
	return models.DayLog{Date: day, GoalMl: goalMl, TotalIntakeMl: intakeMl}
}

func TestComputeStreakEmptyHistory(t *testing.T) {
	if got := ComputeStreak(nil, time.Now()); got != 0 {
		t.Errorf("ComputeStreak(nil) = %d, want 0", got)
	}
}

func TestComputeStreakSevenQualifyingDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)
	today := models.StartOfDay(now)

	var logs []models.DayLog
	// Today plus the prior six days all at exactly the 80% threshold.
	for i := 0; i < 7; i++ {
		logs = append(logs, dayLogOn(today.AddDate(0, 0, -i), 2000, 1600))
	}
	// Day -7 exists but falls short, ending the walk.
	logs = append(logs, dayLogOn(today.AddDate(0, 0, -7), 2000, 1599))

	if got := ComputeStreak(logs, now); got != 7 {
		t.Errorf("ComputeStreak() = %d, want 7", got)
	}
}

func TestComputeStreakEndsToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.Local)
	today := models.StartOfDay(now)

	tests := []struct {
		name string
		logs []models.DayLog
		want int
	}{
		{
			name: "today missing zeroes the streak despite past days",
			logs: []models.DayLog{
				dayLogOn(today.AddDate(0, 0, -1), 2000, 2000),
				dayLogOn(today.AddDate(0, 0, -2), 2000, 2000),
			},
			want: 0,
		},
		{
			name: "today under threshold zeroes the streak",
			logs: []models.DayLog{
				dayLogOn(today, 2000, 500),
				dayLogOn(today.AddDate(0, 0, -1), 2000, 2000),
			},
			want: 0,
		},
		{
			name: "gap in the middle stops the walk",
			logs: []models.DayLog{
				dayLogOn(today, 2000, 1800),
				dayLogOn(today.AddDate(0, 0, -1), 2000, 1800),
				dayLogOn(today.AddDate(0, 0, -3), 2000, 1800),
			},
			want: 2,
		},
		{
			name: "today alone",
			logs: []models.DayLog{dayLogOn(today, 2000, 1600)},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeStreak(tt.logs, now); got != tt.want {
				t.Errorf("ComputeStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}
