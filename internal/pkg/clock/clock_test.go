package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessClockZone(t *testing.T) {
	c, err := NewBusinessClock()
	require.NoError(t, err)
	assert.Equal(t, BusinessTimezone, c.Now().Location().String())
	assert.Equal(t, BusinessTimezone, c.Location().String())
}

func TestFixed(t *testing.T) {
	loc, err := time.LoadLocation(BusinessTimezone)
	require.NoError(t, err)
	instant := time.Date(2026, 1, 15, 22, 30, 0, 0, loc)

	c := Fixed{T: instant}
	assert.Equal(t, instant, c.Now())
	assert.Equal(t, loc, c.Location())
}

func TestDateOf(t *testing.T) {
	loc, err := time.LoadLocation(BusinessTimezone)
	require.NoError(t, err)

	late := time.Date(2026, 1, 15, 23, 59, 59, 123, loc)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, loc), DateOf(late))

	early := time.Date(2026, 1, 16, 0, 0, 1, 0, loc)
	assert.Equal(t, time.Date(2026, 1, 16, 0, 0, 0, 0, loc), DateOf(early))
}
