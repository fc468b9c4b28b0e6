package dashboard

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"monday maps to itself",
			time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC),
			time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			"wednesday maps back to monday",
			time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday belongs to the preceding monday",
			time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC),
			time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			"week spanning a month boundary",
			time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StartOfWeek(tc.in); !got.Equal(tc.want) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestWeekdayLabelsCoverWholeWeek(t *testing.T) {
	if len(weekdayLabels) != 7 {
		t.Fatalf("weekdayLabels has %d entries, want 7", len(weekdayLabels))
	}
	if weekdayLabels[0] != "Mon" || weekdayLabels[6] != "Sun" {
		t.Errorf("weekdayLabels = %v, want Mon..Sun", weekdayLabels)
	}
}
