package employee

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

var RoleValues = []string{string(RoleEmployee), string(RoleAdmin)}

// Employment types the portal distinguishes. Only "training" changes engine
// behavior (shorter break allowance); the rest are descriptive.
var EmploymentTypeValues = []string{"regular", "probationary", "training", "contractual"}

// Employee is the engine's read-only reference data plus the portal account.
// ScheduledTimeIn/Out are kept as the raw strings HR entered ("8:00 AM" or
// "08:00"); the attendance shift parser normalizes both forms.
type Employee struct {
	ID               string
	Code             string
	FullName         string
	Email            string
	PasswordHash     string
	Role             Role
	EmploymentType   string
	ScheduledTimeIn  string
	ScheduledTimeOut string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
