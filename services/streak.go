package services

import (
	"time"

	"github.com/drinkwise/hydrocoach/models"
)

// ComputeStreak counts consecutive qualifying days walking backward from now's
// calendar day, inclusive. A day qualifies when a log exists for it and reached
// at least 80% of its goal. The streak always "ends today": if today has no log
// or is under threshold, the result is 0 regardless of past days.
func ComputeStreak(logs []models.DayLog, now time.Time) int {
	if len(logs) == 0 {
		return 0
	}

	byDay := make(map[time.Time]models.DayLog, len(logs))
	for _, l := range logs {
		byDay[l.StartOfDay()] = l
	}

	streak := 0
	day := models.StartOfDay(now)
	for {
		l, ok := byDay[day]
		if !ok || !l.Reached80Percent() {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
