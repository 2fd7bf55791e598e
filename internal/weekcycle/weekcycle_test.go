package weekcycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeekStart(t *testing.T) {
	// 2025-06-06 is a Friday.
	friday := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"friday maps to itself", time.Date(2025, 6, 6, 15, 30, 0, 0, time.UTC), friday},
		{"friday midnight", friday, friday},
		{"saturday", time.Date(2025, 6, 7, 9, 0, 0, 0, time.UTC), friday},
		{"sunday", time.Date(2025, 6, 8, 23, 59, 59, 0, time.UTC), friday},
		{"monday", time.Date(2025, 6, 9, 1, 0, 0, 0, time.UTC), friday},
		{"tuesday", time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC), friday},
		{"wednesday", time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC), friday},
		{"thursday maps to previous friday", time.Date(2025, 6, 12, 12, 0, 0, 0, time.UTC), friday},
		{"next friday starts a new week", time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, WeekStart(tc.in))
		})
	}
}

func TestWeekStartKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2025, 6, 9, 8, 0, 0, 0, loc)

	got := WeekStart(in)
	require.Equal(t, loc, got.Location())
	require.Equal(t, 0, got.Hour())
	require.Equal(t, 0, got.Minute())
}

func TestWeekKey(t *testing.T) {
	require.Equal(t, "2025-06-06", WeekKey(time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC)))
	require.Equal(t, "2025-05-30", WeekKey(time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC)))
}
