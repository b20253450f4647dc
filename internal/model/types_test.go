package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2025-11-14")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: time.November, Day: 14}, d)
	assert.Equal(t, "2025-11-14", d.String())

	value, err := d.Value()
	require.NoError(t, err)

	var scanned Date
	require.NoError(t, scanned.Scan(value))
	assert.True(t, scanned.Equal(d))
}

func TestDateScanVariants(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan([]byte("2024-02-29")))
	assert.Equal(t, "2024-02-29", d.String())

	require.NoError(t, d.Scan(time.Date(2025, time.January, 2, 23, 59, 0, 0, time.Local)))
	assert.Equal(t, "2025-01-02", d.String())

	require.Error(t, d.Scan(42))
	require.Error(t, d.Scan("not-a-date"))
}

func TestDateBefore(t *testing.T) {
	a, _ := ParseDate("2025-01-09")
	b, _ := ParseDate("2025-01-10")
	c, _ := ParseDate("2024-12-31")
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, c.Before(a))
	assert.False(t, a.Before(a))
}

func TestTimestampRoundTrip(t *testing.T) {
	ts, err := ParseTimestamp("2025-11-14T12:34:56")
	require.NoError(t, err)
	assert.Equal(t, "2025-11-14T12:34:56", ts.String())

	value, err := ts.Value()
	require.NoError(t, err)

	var scanned Timestamp
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, ts.String(), scanned.String())
}

func TestNowIsSecondPrecise(t *testing.T) {
	ts := Now()
	assert.Zero(t, ts.Time().Nanosecond())
	assert.False(t, ts.IsZero())
}

func TestPriority(t *testing.T) {
	assert.True(t, PriorityLow.Valid())
	assert.True(t, PriorityMedium.Valid())
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, Priority("Urgent").Valid())
	assert.False(t, Priority("").Valid())

	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
}

func TestStatus(t *testing.T) {
	assert.True(t, StatusTodo.Valid())
	assert.True(t, StatusDone.Valid())
	assert.False(t, Status("Cancelled").Valid())
}
