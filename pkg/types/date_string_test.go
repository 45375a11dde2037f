package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	ds, err := NewDateStringFromString("2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29", ds.String())

	_, err = NewDateStringFromString("29-08-2026")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = NewDateStringFromString("2026-02-30")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDateStringTime(t *testing.T) {
	ds := DateString("2026-08-29")
	got, err := ds.Time(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), got)
}

func TestDateStringOrdering(t *testing.T) {
	a := DateString("2026-08-29")
	b := DateString("2026-09-01")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(b))
}

func TestNewDateString(t *testing.T) {
	ts := time.Date(2026, 8, 29, 15, 42, 7, 0, time.UTC)
	assert.Equal(t, DateString("2026-08-29"), NewDateString(ts))
}
