package services

import "github.com/drinkwise/hydrocoach/models"

const lbsToKg = 0.45359237

// Goal output bounds in milliliters.
const (
	minGoalMl = 1200
	maxGoalMl = 4500
)

// CalculateGoalMl derives a daily intake goal from a body/activity profile.
// Base guideline is ~35 ml per kg of body weight, adjusted multiplicatively
// for activity, age, and gender, in that order. The result is clamped to a
// sane range, so this never fails. Not medical advice.
func CalculateGoalMl(profile models.Profile, unit string) int {
	weightKg := profile.Weight
	if unit == models.UnitLbs {
		weightKg = profile.Weight * lbsToKg
	}

	mlPerKg := 35.0

	switch profile.ActivityLevel {
	case models.ActivityLight:
		mlPerKg *= 1.1
	case models.ActivityModerate:
		mlPerKg *= 1.2
	case models.ActivityIntense:
		mlPerKg *= 1.35
	}

	if profile.Age < 18 {
		mlPerKg *= 1.05
	} else if profile.Age > 55 {
		mlPerKg *= 0.95
	}

	switch profile.Gender {
	case models.GenderFemale:
		mlPerKg *= 0.95
	case models.GenderMale:
		mlPerKg *= 1.05
	}

	goal := int(weightKg * mlPerKg)

	if goal < minGoalMl {
		return minGoalMl
	}
	if goal > maxGoalMl {
		return maxGoalMl
	}
	return goal
}
