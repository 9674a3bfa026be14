package attendance

import "time"

// Action names the four buttons the portal shows.
type Action string

const (
	ActionTimeIn     Action = "time_in"
	ActionStartBreak Action = "start_break"
	ActionEndBreak   Action = "end_break"
	ActionTimeOut    Action = "time_out"
)

var Actions = []Action{ActionTimeIn, ActionStartBreak, ActionEndBreak, ActionTimeOut}

type Eligibility string

const (
	Enabled   Eligibility = "enabled"
	Disabled  Eligibility = "disabled"
	Completed Eligibility = "completed"
)

// ActionState is the single authoritative answer to "is this action legal
// right now, and why not if not". The presentation layer consults it before
// calling any engine operation.
type ActionState struct {
	Action      Action      `json:"action"`
	Eligibility Eligibility `json:"eligibility"`
	Reason      string      `json:"reason,omitempty"`
}

// StateFor evaluates one action against the current record. rec may be nil
// when no record exists for today yet.
func StateFor(action Action, now time.Time, shift Shift, pol Policy, rec *Record) ActionState {
	disabled := func(reason string) ActionState {
		return ActionState{Action: action, Eligibility: Disabled, Reason: reason}
	}
	done := func() ActionState {
		return ActionState{Action: action, Eligibility: Completed}
	}
	enabled := func() ActionState {
		return ActionState{Action: action, Eligibility: Enabled}
	}

	// Weekend guard comes before everything else: with no time-in on the
	// books, Saturday and Sunday stay locked until Monday morning.
	if wd := now.Weekday(); (wd == time.Saturday || wd == time.Sunday) && (rec == nil || rec.TimeIn == nil) {
		return disabled("actions disabled on weekends without a prior time-in")
	}

	if rec == nil {
		if action == ActionTimeIn {
			return enabled()
		}
		return disabled("only available for today's record")
	}

	if rec.Terminal() {
		if action == ActionTimeOut {
			return done()
		}
		return disabled("already timed out for today")
	}

	switch action {
	case ActionTimeIn:
		if rec.TimeIn != nil {
			return done()
		}
		return enabled()

	case ActionStartBreak:
		if rec.TimeIn == nil {
			return disabled("must time in first")
		}
		if rec.StartBreak != nil {
			return done()
		}
		if minutesBetween(*rec.TimeIn, now) < pol.BreakDelayMinutes {
			return disabled("break is available 60 minutes after time in")
		}
		if minutesBetween(now, pol.scheduledOut(now, shift)) <= pol.BreakCutoffMinutes {
			return disabled("cannot start break when less than 1 hour remaining")
		}
		return enabled()

	case ActionEndBreak:
		if rec.StartBreak == nil {
			return disabled("must start break first")
		}
		if rec.EndBreak != nil {
			return done()
		}
		return enabled()

	case ActionTimeOut:
		if rec.TimeIn == nil {
			return disabled("must time in first")
		}
		if rec.StartBreak != nil && rec.EndBreak == nil {
			return disabled("must end break before timing out")
		}
		return enabled()
	}

	return disabled("unknown action")
}

// StatesFor evaluates every action at once, in button order.
func StatesFor(now time.Time, shift Shift, pol Policy, rec *Record) []ActionState {
	states := make([]ActionState, 0, len(Actions))
	for _, a := range Actions {
		states = append(states, StateFor(a, now, shift, pol, rec))
	}
	return states
}
