package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	// 22:30 local on the 9th is already the 10th in UTC.
	ts := time.Date(2024, 5, 9, 22, 30, 0, 0, loc)
	assert.Equal(t, "2024-05-10", DayKey(ts))
}

func TestParseBound(t *testing.T) {
	d, err := ParseBound("2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), d)

	ts, err := ParseBound("2024-05-10T12:00:00-03:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC), ts)

	_, err = ParseBound("10/05/2024")
	assert.Error(t, err)
}

func TestRangeIsHalfOpen(t *testing.T) {
	r, err := ParseRange("2024-05-01", "2024-05-02")
	require.NoError(t, err)

	assert.True(t, r.Contains(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 4, 30, 23, 0, 0, 0, time.UTC)))
}

func TestParseRangeOpenBounds(t *testing.T) {
	r, err := ParseRange("", " ")
	require.NoError(t, err)
	assert.Nil(t, r.From)
	assert.Nil(t, r.To)
	assert.True(t, r.Contains(time.Now()))

	_, err = ParseRange("bad", "")
	assert.Error(t, err)
}
