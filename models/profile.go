package models

import "time"

// Gender adjustment categories used by the goal calculator.
const (
	GenderFemale = "female"
	GenderMale   = "male"
	GenderOther  = "other"
)

// Activity levels ordered by intensity.
const (
	ActivitySedentary = "sedentary"
	ActivityLight     = "light"
	ActivityModerate  = "moderate"
	ActivityIntense   = "intense"
)

// Weight units accepted from the client.
const (
	UnitKg  = "kg"
	UnitLbs = "lbs"
)

// Profile stores the body and activity data the daily goal is derived from.
// It is replaced wholesale when the user re-runs onboarding.
type Profile struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Age           int       `gorm:"not null" json:"age"`
	Gender        string    `gorm:"size:16;not null" json:"gender"`
	Weight        float64   `gorm:"not null" json:"weight"`
	HeightCm      *float64  `json:"height_cm,omitempty"`
	ActivityLevel string    `gorm:"size:16;not null" json:"activity_level"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ValidGender reports whether s is one of the accepted gender values.
func ValidGender(s string) bool {
	return s == GenderFemale || s == GenderMale || s == GenderOther
}

// ValidActivityLevel reports whether s is one of the accepted activity levels.
func ValidActivityLevel(s string) bool {
	switch s {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityIntense:
		return true
	}
	return false
}

// ValidWeightUnit reports whether s is an accepted weight unit.
func ValidWeightUnit(s string) bool {
	return s == UnitKg || s == UnitLbs
}
