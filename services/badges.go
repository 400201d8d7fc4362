package services

// Badge is one entry in the static streak-reward catalog.
type Badge struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	RequiredStreak int    `json:"required_streak"`
}

// AllBadges is the fixed catalog, ordered by required streak.
var AllBadges = []Badge{
	{
		ID:             "rookie",
		Name:           "Hydration Rookie",
		Description:    "Hit your goal 3 days in a row.",
		RequiredStreak: 3,
	},
	{
		ID:             "champ",
		Name:           "Consistency Champ",
		Description:    "Hit your goal 7 days in a row.",
		RequiredStreak: 7,
	},
	{
		ID:             "hero",
		Name:           "Hydration Hero",
		Description:    "Hit your goal 30 days in a row.",
		RequiredStreak: 30,
	},
}

// UnlockedBadges returns the catalog entries earned at the given streak.
func UnlockedBadges(streak int) []Badge {
	unlocked := make([]Badge, 0, len(AllBadges))
	for _, b := range AllBadges {
		if streak >= b.RequiredStreak {
			unlocked = append(unlocked, b)
		}
	}
	return unlocked
}
