package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStations(t *testing.T) {
	stations := Stations()

	require.Len(t, stations, StationCount)
	assert.Equal(t, "1", stations[0])
	assert.Equal(t, "22", stations[21])
}

func TestIsValidStation(t *testing.T) {
	for _, id := range Stations() {
		assert.True(t, IsValidStation(id), id)
	}

	for _, id := range []string{"0", "23", "-1", "abc", "", "01", " 1"} {
		assert.False(t, IsValidStation(id), id)
	}
}

func TestPollutantOrderMatchesSafeLimits(t *testing.T) {
	require.Len(t, PollutantOrder, 6)
	require.Len(t, PollutantReference, 6)

	for i, code := range PollutantOrder {
		limit, ok := SafeLimits[code]
		require.True(t, ok, code)
		assert.Positive(t, limit)
		assert.Equal(t, code, PollutantReference[i].Code)
		assert.Equal(t, limit, PollutantReference[i].SafeLimit)
	}
}
