package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"D", false},
		{"H", false},
		{"W", false},
		{"M", false},
		{"5min", false},
		{"15min", false},
		{"2H", false},
		{"", true},
		{"X", true},
		{"0D", true},
		{"minutes", true},
	}

	for _, tc := range tests {
		_, err := ParseFrequency(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrUnknownFrequency, "input %q", tc.in)
		} else {
			assert.NoError(t, err, "input %q", tc.in)
		}
	}
}

func TestFrequencyEqual(t *testing.T) {
	assert.True(t, MustFrequency("D").Equal(MustFrequency("D")))
	assert.True(t, MustFrequency("60min").Equal(MustFrequency("H")))
	assert.True(t, MustFrequency("H").Equal(MustFrequency("60min")))
	assert.False(t, MustFrequency("D").Equal(MustFrequency("H")))
	assert.False(t, MustFrequency("5min").Equal(MustFrequency("15min")))
}

func TestFrequencyStep(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, start.Add(3*time.Hour), MustFrequency("H").Step(start, 3))
	assert.Equal(t, start.Add(25*time.Minute), MustFrequency("5min").Step(start, 5))
	assert.Equal(t, time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC), MustFrequency("D").Step(start, 30))
	assert.Equal(t, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), MustFrequency("W").Step(start, 2))
}

func TestFrequencyStepMonthIsCalendarAware(t *testing.T) {
	start := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	stepped := MustFrequency("M").Step(start, 1)

	// AddDate normalizes Jan 31 + 1 month to Mar 3.
	assert.Equal(t, time.Date(2023, 3, 3, 0, 0, 0, 0, time.UTC), stepped)

	jan := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), MustFrequency("M").Step(jan, 6))
}
