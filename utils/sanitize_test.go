package utils

import "testing"

func TestSanitizeNote(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text passes through", "after my run", "after my run"},
		{"script stripped", `<script>alert("x")</script>water`, "water"},
		{"markup removed keeps text", "<b>big</b> glass", "big glass"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeNote(tt.input); got != tt.want {
				t.Errorf("SanitizeNote(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "s3cret-pass") {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Error("CheckPassword accepted a wrong password")
	}
}
