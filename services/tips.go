package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/drinkwise/hydrocoach/models"
)

// trendWindowDays bounds the trailing window used for the recent average.
const trendWindowDays = 7

const firstGlassTip = "Log your first glass of water to get the day started."

// Time-of-day buckets.
const (
	timeMorning   = "morning"
	timeAfternoon = "afternoon"
	timeEvening   = "evening"
)

// Hand-written tip bank, keyed by progress bucket then time of day.
var lowProgressTips = map[string]string{
	timeMorning:   "Nice start! A glass of water in the morning helps wake up your brain and digestion.",
	timeAfternoon: "You're still early in your hydration. A drink now can fight that afternoon energy slump.",
	timeEvening:   "You're a bit behind today. A glass of water this evening still supports your kidneys and circulation.",
}

var midProgressTips = map[string]string{
	timeMorning:   "You're off to a solid start. Staying hydrated this morning supports focus and mood for the day.",
	timeAfternoon: "You're around the halfway mark. Hydration now helps maintain energy and reduces headaches.",
	timeEvening:   "You're making good progress. Water this evening supports recovery and healthy sleep quality.",
}

var highProgressTips = map[string]string{
	timeMorning:   "Great job! You're well above average for this morning. Keep sipping steadily through the day.",
	timeAfternoon: "You're closing in on your goal. Hydration supports muscle function, especially if you're active.",
	timeEvening:   "You're almost there. A bit more water this evening helps your body recover and flush waste.",
}

var goalReachedTips = map[string]string{
	timeMorning:   "Wow, you hit your goal early! Remember to sip slowly and listen to your thirst.",
	timeAfternoon: "Hydration goal reached! You're supporting your heart, kidneys, and brain. Nice work.",
	timeEvening:   "You've reached your goal today. Stay mindful of thirst and enjoy the benefits of steady hydration.",
}

// Tip produces context-sensitive guidance for the dashboard: a base sentence
// picked by progress bucket and time of day, plus a trend clause comparing
// today against the trailing week when enough history exists. Always returns
// non-empty text.
func Tip(todayLog models.DayLog, recentLogs []models.DayLog, now time.Time) string {
	if len(todayLog.Entries) == 0 {
		return firstGlassTip
	}

	timeOfDay := timeOfDayBucket(now.Hour())
	progress := todayLog.Progress()
	percent := int(progress * 100)

	var base string
	switch {
	case percent < 30:
		base = lowProgressTips[timeOfDay]
	case percent < 70:
		base = midProgressTips[timeOfDay]
	case percent < 100:
		base = highProgressTips[timeOfDay]
	default:
		base = goalReachedTips[timeOfDay]
	}

	avg, ok := recentAverage(todayLog, recentLogs)
	if !ok {
		return base
	}
	return base + " " + trendClause(progress, avg)
}

func timeOfDayBucket(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return timeMorning
	case hour >= 12 && hour < 18:
		return timeAfternoon
	default:
		return timeEvening
	}
}

// recentAverage merges today's log into the recent history, de-duplicates by
// calendar day (later-provided value wins), keeps the trailing window, and
// averages clamped progress. Needs at least two days to say anything.
func recentAverage(todayLog models.DayLog, recentLogs []models.DayLog) (float64, bool) {
	byDay := make(map[time.Time]models.DayLog, len(recentLogs)+1)
	for _, l := range recentLogs {
		byDay[l.StartOfDay()] = l
	}
	byDay[todayLog.StartOfDay()] = todayLog

	days := make([]time.Time, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	if len(days) > trendWindowDays {
		days = days[len(days)-trendWindowDays:]
	}
	if len(days) < 2 {
		return 0, false
	}

	var sum float64
	for _, d := range days {
		sum += byDay[d].Progress()
	}
	return sum / float64(len(days)), true
}

func trendClause(progress, average float64) string {
	switch {
	case progress >= average*1.15:
		return "You're ahead of your recent pace."
	case progress <= average*0.85:
		return fmt.Sprintf("You're a little behind your usual pace (recent average %d%%).", int(average*100))
	default:
		return "That's right in line with your recent days."
	}
}
