package datetime

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2020-01-31")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	expected := time.Date(2020, time.January, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(expected) {
		t.Errorf("ParseDate() = %v, expected %v", got, expected)
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, err := ParseDate("01/31/2020"); err == nil {
		t.Error("ParseDate() expected error for invalid layout but got none")
	}
}

func TestDateBeforeDate(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		second   string
		expected bool
	}{
		{
			name:     "First before second",
			first:    "2020-01-01",
			second:   "2021-01-01",
			expected: true,
		},
		{
			name:     "First after second",
			first:    "2022-01-01",
			second:   "2021-01-01",
			expected: false,
		},
		{
			name:     "Equal dates",
			first:    "2021-01-01",
			second:   "2021-01-01",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateBeforeDate(tt.first, tt.second)
			if err != nil {
				t.Fatalf("DateBeforeDate() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("DateBeforeDate() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMustParseTimePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseTime() expected panic for invalid date")
		}
	}()
	MustParseTime(DateTimeLayout, "not-a-date")
}
