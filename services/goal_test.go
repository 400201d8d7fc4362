package services

import (
	"testing"

	"github.com/drinkwise/hydrocoach/models"
)

func profile(age int, gender string, weight float64, activity string) models.Profile {
	return models.Profile{Age: age, Gender: gender, Weight: weight, ActivityLevel: activity}
}

func TestCalculateGoalMl(t *testing.T) {
	tests := []struct {
		name    string
		profile models.Profile
		unit    string
		want    int
	}{
		{
			name:    "baseline moderate adult",
			profile: profile(30, models.GenderOther, 70, models.ActivityModerate),
			unit:    models.UnitKg,
			want:    2940, // 70 * 35 * 1.2
		},
		{
			name:    "sedentary female",
			profile: profile(25, models.GenderFemale, 50, models.ActivitySedentary),
			unit:    models.UnitKg,
			want:    1662, // 50 * 35 * 0.95, truncated
		},
		{
			name:    "heavy intense male clamps at ceiling",
			profile: profile(60, models.GenderMale, 100, models.ActivityIntense),
			unit:    models.UnitKg,
			want:    4500,
		},
		{
			name:    "light tiny frame clamps at floor",
			profile: profile(30, models.GenderOther, 20, models.ActivitySedentary),
			unit:    models.UnitKg,
			want:    1200, // 20 * 35 = 700 raw
		},
		{
			name:    "pounds are converted before the formula",
			profile: profile(30, models.GenderOther, 154, models.ActivitySedentary),
			unit:    models.UnitLbs,
			want:    2444, // 154 lbs = 69.85 kg, * 35
		},
		{
			name:    "minor gets the youth bump",
			profile: profile(16, models.GenderOther, 70, models.ActivitySedentary),
			unit:    models.UnitKg,
			want:    2572, // 70 * 35 * 1.05
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateGoalMl(tt.profile, tt.unit)
			if got != tt.want {
				t.Errorf("CalculateGoalMl() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateGoalMlAlwaysInRange(t *testing.T) {
	genders := []string{models.GenderFemale, models.GenderMale, models.GenderOther}
	activities := []string{models.ActivitySedentary, models.ActivityLight, models.ActivityModerate, models.ActivityIntense}

	for _, g := range genders {
		for _, a := range activities {
			for _, age := range []int{10, 18, 40, 56, 90} {
				for weight := 1.0; weight <= 300; weight += 37 {
					got := CalculateGoalMl(profile(age, g, weight, a), models.UnitKg)
					if got < 1200 || got > 4500 {
						t.Fatalf("goal %d out of range for gender=%s activity=%s age=%d weight=%.0f", got, g, a, age, weight)
					}
				}
			}
		}
	}
}

func TestCalculateGoalMlMonotonicInWeight(t *testing.T) {
	prev := 0
	for weight := 30.0; weight <= 150; weight += 5 {
		got := CalculateGoalMl(profile(30, models.GenderOther, weight, models.ActivityModerate), models.UnitKg)
		if got < prev {
			t.Fatalf("goal decreased from %d to %d at weight %.0f", prev, got, weight)
		}
		prev = got
	}
}

func TestCalculateGoalMlMonotonicInActivity(t *testing.T) {
	order := []string{models.ActivitySedentary, models.ActivityLight, models.ActivityModerate, models.ActivityIntense}
	prev := 0
	for _, a := range order {
		got := CalculateGoalMl(profile(30, models.GenderOther, 70, a), models.UnitKg)
		if got < prev {
			t.Fatalf("goal decreased to %d at activity %s", got, a)
		}
		prev = got
	}
}
