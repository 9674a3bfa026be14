package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateOf(states []ActionState, action Action) ActionState {
	for _, st := range states {
		if st.Action == action {
			return st
		}
	}
	return ActionState{}
}

func TestEligibilityNoRecordYet(t *testing.T) {
	pol := DefaultPolicy()
	states := StatesFor(at(8, 0), dayShift(t), pol, nil)

	assert.Equal(t, Enabled, stateOf(states, ActionTimeIn).Eligibility)
	for _, action := range []Action{ActionStartBreak, ActionEndBreak, ActionTimeOut} {
		st := stateOf(states, action)
		assert.Equal(t, Disabled, st.Eligibility)
		assert.Equal(t, "only available for today's record", st.Reason)
	}
}

func TestEligibilityBreakDelay(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	rec := Record{}
	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))

	// Immediately after time-in the break button stays locked.
	st := StateFor(ActionStartBreak, at(8, 0), shift, pol, &rec)
	assert.Equal(t, Disabled, st.Eligibility)
	assert.Equal(t, "break is available 60 minutes after time in", st.Reason)

	// An hour later it opens.
	st = StateFor(ActionStartBreak, at(9, 1), shift, pol, &rec)
	assert.Equal(t, Enabled, st.Eligibility)
}

func TestEligibilityBreakCutoff(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	rec := Record{}
	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))

	st := StateFor(ActionStartBreak, at(16, 30), shift, pol, &rec)
	assert.Equal(t, Disabled, st.Eligibility)
	assert.Equal(t, "cannot start break when less than 1 hour remaining", st.Reason)
}

func TestEligibilityAfterTimeIn(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	rec := Record{}
	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))

	states := StatesFor(at(10, 0), shift, pol, &rec)
	assert.Equal(t, Completed, stateOf(states, ActionTimeIn).Eligibility)
	assert.Equal(t, Enabled, stateOf(states, ActionStartBreak).Eligibility)
	assert.Equal(t, Enabled, stateOf(states, ActionTimeOut).Eligibility)

	st := stateOf(states, ActionEndBreak)
	assert.Equal(t, Disabled, st.Eligibility)
	assert.Equal(t, "must start break first", st.Reason)
}

func TestEligibilityDuringBreak(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	rec := Record{}
	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))
	require.NoError(t, StartBreak(at(12, 0), shift, pol, &rec))

	states := StatesFor(at(12, 10), shift, pol, &rec)
	assert.Equal(t, Completed, stateOf(states, ActionStartBreak).Eligibility)
	assert.Equal(t, Enabled, stateOf(states, ActionEndBreak).Eligibility)

	st := stateOf(states, ActionTimeOut)
	assert.Equal(t, Disabled, st.Eligibility)
	assert.Equal(t, "must end break before timing out", st.Reason)
}

func TestEligibilityTerminalRecord(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	rec := Record{}
	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))
	require.NoError(t, ClockOut(at(17, 0), shift, pol, &rec))

	states := StatesFor(at(17, 10), shift, pol, &rec)
	assert.Equal(t, Completed, stateOf(states, ActionTimeOut).Eligibility)
	for _, action := range []Action{ActionTimeIn, ActionStartBreak, ActionEndBreak} {
		st := stateOf(states, action)
		assert.Equal(t, Disabled, st.Eligibility)
		assert.Equal(t, "already timed out for today", st.Reason)
	}
}

func TestEligibilityWeekendGuard(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)

	// 2026-01-17 is a Saturday.
	saturday := time.Date(2026, 1, 17, 8, 0, 0, 0, manila)
	require.Equal(t, time.Saturday, saturday.Weekday())

	states := StatesFor(saturday, shift, pol, nil)
	for _, st := range states {
		assert.Equal(t, Disabled, st.Eligibility)
		assert.Equal(t, "actions disabled on weekends without a prior time-in", st.Reason)
	}
}

func TestEligibilityWeekendWithOpenGraveyardRecord(t *testing.T) {
	// A graveyard shift that timed in Friday night keeps its buttons on
	// Saturday morning.
	pol := DefaultPolicy()
	shift := graveyardShift(t)
	rec := Record{}

	friday := time.Date(2026, 1, 16, 22, 0, 0, 0, manila)
	require.Equal(t, time.Friday, friday.Weekday())
	require.NoError(t, ClockIn(friday, shift, pol, &rec))

	saturday := time.Date(2026, 1, 17, 2, 0, 0, 0, manila)
	st := StateFor(ActionTimeOut, saturday, shift, pol, &rec)
	assert.Equal(t, Enabled, st.Eligibility)
}
