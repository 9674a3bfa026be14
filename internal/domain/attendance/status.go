package attendance

import "fmt"

// TimeFacet classifies the actual instant against the scheduled one.
type TimeFacet string

const (
	FacetOnTime    TimeFacet = "On Time"
	FacetLate      TimeFacet = "Late"
	FacetEarly     TimeFacet = "Early"
	FacetUndertime TimeFacet = "Undertime"
	FacetOvertime  TimeFacet = "Overtime"
)

// TimeInStatus is derived once at time-in.
type TimeInStatus struct {
	Facet   TimeFacet
	Minutes int
}

func (s TimeInStatus) String() string {
	if s.Facet == FacetOnTime {
		return string(FacetOnTime)
	}
	return fmt.Sprintf("%s(%d)", s.Facet, s.Minutes)
}

// BreakStatus is derived once at break-end. OverbreakMinutes of zero means the
// break fit inside the allowance.
type BreakStatus struct {
	OverbreakMinutes int
}

func (s BreakStatus) String() string {
	if s.OverbreakMinutes <= 0 {
		return string(FacetOnTime)
	}
	return fmt.Sprintf("Overbreak(%d)", s.OverbreakMinutes)
}

// TimeOutStatus combines the undertime/overtime facet with an optional
// overbreak facet. Rendered as e.g. "Overtime(30) | Overbreak(10)", matching
// the strings the portal has always displayed.
type TimeOutStatus struct {
	Facet            TimeFacet
	Minutes          int
	OverbreakMinutes int
}

func (s TimeOutStatus) String() string {
	out := string(FacetOnTime)
	if s.Facet != FacetOnTime {
		out = fmt.Sprintf("%s(%d)", s.Facet, s.Minutes)
	}
	if s.OverbreakMinutes > 0 {
		out += fmt.Sprintf(" | Overbreak(%d)", s.OverbreakMinutes)
	}
	return out
}
