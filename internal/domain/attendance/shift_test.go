package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShiftTime(t *testing.T) {
	tests := []struct {
		in   string
		want ShiftTime
	}{
		{"08:00", ShiftTime{8, 0}},
		{"22:00:00", ShiftTime{22, 0}},
		{"8:00 AM", ShiftTime{8, 0}},
		{"10:00 pm", ShiftTime{22, 0}},
		{"3:04PM", ShiftTime{15, 4}},
		{"12:00 AM", ShiftTime{0, 0}},
		{"12:30 PM", ShiftTime{12, 30}},
		{" 17:45 ", ShiftTime{17, 45}},
	}
	for _, tt := range tests {
		got, err := ParseShiftTime(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseShiftTimeInvalid(t *testing.T) {
	for _, in := range []string{"", "morning", "25:00", "8 o'clock"} {
		_, err := ParseShiftTime(in)
		assert.ErrorIs(t, err, ErrBadScheduleTime, in)
	}
}

func TestParseShift(t *testing.T) {
	shift, err := ParseShift("10:00 PM", "6:00 AM", "regular")
	require.NoError(t, err)
	assert.Equal(t, ShiftTime{22, 0}, shift.In)
	assert.Equal(t, ShiftTime{6, 0}, shift.Out)
	assert.Equal(t, "regular", shift.EmploymentType)

	_, err = ParseShift("bad", "17:00", "regular")
	assert.ErrorIs(t, err, ErrBadScheduleTime)

	_, err = ParseShift("08:00", "bad", "regular")
	assert.ErrorIs(t, err, ErrBadScheduleTime)
}

func TestShiftTimeOn(t *testing.T) {
	date := time.Date(2026, 1, 15, 13, 45, 12, 99, manila)
	anchored := ShiftTime{8, 30}.On(date)
	assert.Equal(t, time.Date(2026, 1, 15, 8, 30, 0, 0, manila), anchored)
}

func TestShiftTimeString(t *testing.T) {
	assert.Equal(t, "08:05", ShiftTime{8, 5}.String())
	assert.Equal(t, "22:00", ShiftTime{22, 0}.String())
}
