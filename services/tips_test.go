package services

import (
	"strings"
	"testing"
	"time"

	"github.com/drinkwise/hydrocoach/models"
)

// loggedDay builds a day log that already has one entry recorded.
func loggedDay(day time.Time, goalMl, intakeMl int) models.DayLog {
	return models.DayLog{
		Date:          day,
		GoalMl:        goalMl,
		TotalIntakeMl: intakeMl,
		Entries: []models.HydrationEntry{
			{EntryID: "e1", Timestamp: day.Add(8 * time.Hour), AmountMl: intakeMl},
		},
	}
}

func TestTipFirstGlass(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)
	empty := models.DayLog{Date: models.StartOfDay(now), GoalMl: 2000}

	if got := Tip(empty, nil, now); got != firstGlassTip {
		t.Errorf("Tip() with no entries = %q, want first-glass prompt", got)
	}
}

func TestTipBucketSelection(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		intakeMl int
		hour     int
		want     string
	}{
		{"low progress morning", 400, 9, lowProgressTips[timeMorning]},
		{"low progress late night", 400, 2, lowProgressTips[timeEvening]},
		{"mid progress afternoon", 1000, 14, midProgressTips[timeAfternoon]},
		{"high progress evening", 1700, 20, highProgressTips[timeEvening]},
		{"goal reached morning", 2000, 11, goalReachedTips[timeMorning]},
		{"over goal evening", 2600, 18, goalReachedTips[timeEvening]},
		{"29 percent stays low", 580, 9, lowProgressTips[timeMorning]},
		{"70 percent moves to high", 1400, 9, highProgressTips[timeMorning]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := today.Add(time.Duration(tt.hour) * time.Hour)
			log := loggedDay(today, 2000, tt.intakeMl)

			// No recent history, so the base sentence comes back alone.
			if got := Tip(log, nil, now); got != tt.want {
				t.Errorf("Tip() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTipTrendClause(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	now := today.Add(14 * time.Hour)

	tests := []struct {
		name       string
		todayLog   models.DayLog
		recentLogs []models.DayLog
		wantClause string
	}{
		{
			name:     "ahead of recent pace",
			todayLog: loggedDay(today, 2000, 1800),
			recentLogs: []models.DayLog{
				loggedDay(today.AddDate(0, 0, -1), 2000, 1000),
			},
			wantClause: "You're ahead of your recent pace.",
		},
		{
			name:     "behind recent pace names the average",
			todayLog: loggedDay(today, 2000, 500),
			recentLogs: []models.DayLog{
				loggedDay(today.AddDate(0, 0, -1), 2000, 2000),
				loggedDay(today.AddDate(0, 0, -2), 2000, 2000),
			},
			wantClause: "You're a little behind your usual pace (recent average 75%).",
		},
		{
			name:     "in line with recent days",
			todayLog: loggedDay(today, 2000, 1000),
			recentLogs: []models.DayLog{
				loggedDay(today.AddDate(0, 0, -1), 2000, 1000),
			},
			wantClause: "That's right in line with your recent days.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tip(tt.todayLog, tt.recentLogs, now)
			if !strings.HasSuffix(got, " "+tt.wantClause) {
				t.Errorf("Tip() = %q, want trend clause %q", got, tt.wantClause)
			}
		})
	}
}

func TestTipNoTrendClauseWithoutHistory(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	now := today.Add(14 * time.Hour)
	log := loggedDay(today, 2000, 1000)

	// A recent log on today's own date collapses with today, leaving a
	// single distinct day, which is not enough for a trend.
	recent := []models.DayLog{loggedDay(today, 2000, 2000)}

	if got := Tip(log, recent, now); got != midProgressTips[timeAfternoon] {
		t.Errorf("Tip() = %q, want bare base sentence", got)
	}
}

func TestRecentAverageWindow(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	todayLog := loggedDay(today, 2000, 1000)

	// Nine prior days at full goal; only the trailing window should count,
	// so the distant days cannot dilute the average.
	var recent []models.DayLog
	for i := 1; i <= 9; i++ {
		recent = append(recent, loggedDay(today.AddDate(0, 0, -i), 2000, 2000))
	}

	avg, ok := recentAverage(todayLog, recent)
	if !ok {
		t.Fatal("recentAverage() reported not enough history")
	}
	// Window of 7 days: six at 1.0 plus today at 0.5.
	want := 6.5 / 7
	if diff := avg - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("recentAverage() = %v, want %v", avg, want)
	}
}
