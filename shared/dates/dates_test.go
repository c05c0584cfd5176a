package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ehotel/shared/dates"
)

func TestStayDuration(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{
			name:  "five day stay",
			start: "2024-01-10",
			end:   "2024-01-15",
			want:  5,
		},
		{
			name:  "single night",
			start: "2024-03-01",
			end:   "2024-03-02",
			want:  1,
		},
		{
			name:  "same day counts as one",
			start: "2024-03-01",
			end:   "2024-03-01",
			want:  1,
		},
		{
			name:  "across month boundary",
			start: "2024-02-28",
			end:   "2024-03-02",
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := dates.Parse(tt.start)
			assert.NoError(t, err)

			end, err := dates.Parse(tt.end)
			assert.NoError(t, err)

			assert.Equal(t, tt.want, dates.StayDuration(start, end))
		})
	}
}

func TestStayDuration_IgnoresTimeOfDay(t *testing.T) {
	// 23:30 on the 10th to 01:00 on the 15th is still a 5 day stay.
	start := time.Date(2024, 1, 10, 23, 30, 0, 0, time.UTC)
	end := time.Date(2024, 1, 15, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, dates.StayDuration(start, end))
}

func TestOverlaps(t *testing.T) {
	day := func(s string) time.Time {
		d, err := dates.Parse(s)
		if err != nil {
			t.Fatalf("bad date %s: %v", s, err)
		}

		return d
	}

	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{
			name:   "contained interval",
			aStart: "2024-03-01", aEnd: "2024-03-05",
			bStart: "2024-03-03", bEnd: "2024-03-04",
			want: true,
		},
		{
			name:   "shared boundary day counts as overlap",
			aStart: "2024-03-01", aEnd: "2024-03-05",
			bStart: "2024-03-05", bEnd: "2024-03-09",
			want: true,
		},
		{
			name:   "disjoint intervals",
			aStart: "2024-03-01", aEnd: "2024-03-05",
			bStart: "2024-03-06", bEnd: "2024-03-09",
			want: false,
		},
		{
			name:   "identical intervals",
			aStart: "2024-03-01", aEnd: "2024-03-05",
			bStart: "2024-03-01", bEnd: "2024-03-05",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dates.Overlaps(day(tt.aStart), day(tt.aEnd), day(tt.bStart), day(tt.bEnd))
			assert.Equal(t, tt.want, got)

			// Overlap is symmetric.
			assert.Equal(t, tt.want, dates.Overlaps(day(tt.bStart), day(tt.bEnd), day(tt.aStart), day(tt.aEnd)))
		})
	}
}

func TestAddDays(t *testing.T) {
	start, err := dates.Parse("2024-01-10")
	assert.NoError(t, err)

	assert.Equal(t, "2024-01-15", dates.Format(dates.AddDays(start, 5)))
	assert.Equal(t, "2024-01-10", dates.Format(dates.AddDays(start, 0)))
}
