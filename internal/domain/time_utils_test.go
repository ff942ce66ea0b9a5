package domain

import (
	"errors"
	"testing"
	"time"
)

// TestStartOfDay tests that the time of day is stripped in the given location
func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)
	// 2024-05-01 20:30 UTC is already 2024-05-02 in UTC+8
	date := time.Date(2024, 5, 1, 20, 30, 0, 0, time.UTC)

	got := StartOfDay(date, loc)
	want := time.Date(2024, 5, 2, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if got := StartOfDay(date, nil); !got.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected UTC midnight for nil location, got %v", got)
	}
}

// TestParseDate tests the accepted backend layouts
func TestParseDate(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)

	tests := []struct {
		value string
		want  time.Time
	}{
		{value: "2024-05-01", want: time.Date(2024, 5, 1, 0, 0, 0, 0, loc)},
		{value: " 2024-05-01 ", want: time.Date(2024, 5, 1, 0, 0, 0, 0, loc)},
		{value: "2024-05-01 08:15:00", want: time.Date(2024, 5, 1, 8, 15, 0, 0, loc)},
		{value: "2024-05-01T00:00:00Z", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{value: "2024-05-01T00:00:00+08:00", want: time.Date(2024, 5, 1, 0, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.value, loc)
		if err != nil {
			t.Errorf("ParseDate(%q): unexpected error %v", tt.value, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q): expected %v, got %v", tt.value, tt.want, got)
		}
	}

	for _, bad := range []string{"", "tomorrow", "2024/05/01"} {
		if _, err := ParseDate(bad, loc); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("ParseDate(%q): expected ErrInvalidRequest, got %v", bad, err)
		}
	}
}

// TestFormatDate func
func TestFormatDate(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)
	date := time.Date(2024, 5, 1, 20, 30, 0, 0, time.UTC)

	if got := FormatDate(date, loc); got != "2024-05-02" {
		t.Errorf("expected 2024-05-02, got %s", got)
	}
	if got := FormatDate(date, nil); got != "2024-05-01" {
		t.Errorf("expected 2024-05-01, got %s", got)
	}
}
