package services

import "testing"

func TestUnlockedBadges(t *testing.T) {
	tests := []struct {
		streak  int
		wantIDs []string
	}{
		{0, []string{}},
		{2, []string{}},
		{3, []string{"rookie"}},
		{6, []string{"rookie"}},
		{7, []string{"rookie", "champ"}},
		{29, []string{"rookie", "champ"}},
		{30, []string{"rookie", "champ", "hero"}},
		{100, []string{"rookie", "champ", "hero"}},
	}

	for _, tt := range tests {
		got := UnlockedBadges(tt.streak)
		if len(got) != len(tt.wantIDs) {
			t.Errorf("UnlockedBadges(%d) returned %d badges, want %d", tt.streak, len(got), len(tt.wantIDs))
			continue
		}
		for i, b := range got {
			if b.ID != tt.wantIDs[i] {
				t.Errorf("UnlockedBadges(%d)[%d].ID = %q, want %q", tt.streak, i, b.ID, tt.wantIDs[i])
			}
		}
	}
}

func TestAllBadgesOrderedByRequiredStreak(t *testing.T) {
	for i := 1; i < len(AllBadges); i++ {
		if AllBadges[i].RequiredStreak <= AllBadges[i-1].RequiredStreak {
			t.Errorf("AllBadges[%d].RequiredStreak = %d, not greater than previous %d",
				i, AllBadges[i].RequiredStreak, AllBadges[i-1].RequiredStreak)
		}
	}
}
