package attendance

// EmploymentTypeTraining gets a shorter break allowance than everyone else.
const EmploymentTypeTraining = "training"

// Policy collects the thresholds the engine compares against. The midnight
// boundary hours are heuristics carried over from the legacy portal, kept
// configurable rather than hardened into the rules.
type Policy struct {
	// MorningBoundaryHour: an actual instant before this hour counts as the
	// early-morning side of midnight when paired with an evening schedule.
	MorningBoundaryHour int
	// EveningBoundaryHour: a scheduled time at or after this hour counts as
	// the evening side of midnight.
	EveningBoundaryHour int
	// BreakDelayMinutes must elapse after time-in before a break may start.
	BreakDelayMinutes int
	// BreakCutoffMinutes before the scheduled time-out, break-start closes.
	BreakCutoffMinutes int
	// MaxBreakMinutes is the default break allowance.
	MaxBreakMinutes int
	// TrainingMaxBreakMinutes is the allowance for trainees.
	TrainingMaxBreakMinutes int
}

// DefaultPolicy returns the thresholds the portal has always used.
func DefaultPolicy() Policy {
	return Policy{
		MorningBoundaryHour:     6,
		EveningBoundaryHour:     18,
		BreakDelayMinutes:       60,
		BreakCutoffMinutes:      60,
		MaxBreakMinutes:         60,
		TrainingMaxBreakMinutes: 15,
	}
}

// BreakAllowance returns the maximum break minutes for an employment type.
func (p Policy) BreakAllowance(employmentType string) int {
	if employmentType == EmploymentTypeTraining {
		return p.TrainingMaxBreakMinutes
	}
	return p.MaxBreakMinutes
}
