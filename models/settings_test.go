package models

import (
	"testing"
	"time"
)

func TestValidReminderFrequency(t *testing.T) {
	for _, minutes := range []int{60, 90, 120} {
		if !ValidReminderFrequency(minutes) {
			t.Errorf("ValidReminderFrequency(%d) = false, want true", minutes)
		}
	}
	for _, minutes := range []int{0, 15, 45, 61, 180, -60} {
		if ValidReminderFrequency(minutes) {
			t.Errorf("ValidReminderFrequency(%d) = true, want false", minutes)
		}
	}
}

func TestParseClockTime(t *testing.T) {
	hour, minute, err := ParseClockTime("07:30")
	if err != nil {
		t.Fatalf("ParseClockTime(07:30) error: %v", err)
	}
	if hour != 7 || minute != 30 {
		t.Errorf("ParseClockTime(07:30) = %d:%d, want 7:30", hour, minute)
	}

	for _, bad := range []string{"", "7:30:00", "24:00", "12:60", "noon", "99:99"} {
		if _, _, err := ParseClockTime(bad); err == nil {
			t.Errorf("ParseClockTime(%q) accepted invalid input", bad)
		}
	}
}

func TestWakeAndSleepInstants(t *testing.T) {
	s := Settings{WakeTime: "07:00", SleepTime: "23:15"}
	day := time.Date(2025, 6, 15, 13, 40, 0, 0, time.Local)

	wake := s.WakeInstant(day)
	if want := time.Date(2025, 6, 15, 7, 0, 0, 0, time.Local); !wake.Equal(want) {
		t.Errorf("WakeInstant() = %v, want %v", wake, want)
	}
	sleep := s.SleepInstant(day)
	if want := time.Date(2025, 6, 15, 23, 15, 0, 0, time.Local); !sleep.Equal(want) {
		t.Errorf("SleepInstant() = %v, want %v", sleep, want)
	}

	s.WakeTime = "garbage"
	if !s.WakeInstant(day).IsZero() {
		t.Error("WakeInstant() with unparseable value should be the zero time")
	}
}
