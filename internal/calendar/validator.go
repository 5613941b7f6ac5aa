package calendar

import (
	"fmt"
	"strings"
)

// Role says which end of the range a boundary input edits
type Role int

const (
	RoleStart Role = iota + 1
	RoleEnd
)

// ParseRole accepts "start" or "end"
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return RoleStart, nil
	case "end":
		return RoleEnd, nil
	default:
		return 0, fmt.Errorf("unknown boundary role %q", s)
	}
}

func (r Role) String() string {
	switch r {
	case RoleStart:
		return "Start"
	case RoleEnd:
		return "End"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Boundary validation messages
const (
	msgFormat       = "%s date must be in YYYY-MM-DD format."
	msgPast         = "%s date cannot be in the past."
	msgStartWeekend = "Start date cannot be a weekend (Sat/Sun)."
	msgEndWeekend   = "End date cannot be a weekend."
	msgBeforeStart  = "End date cannot be before the start date."
)

// ValidateBoundary checks a candidate start or end date typed by the user and
// returns a message for the input's validity state, or "" when it is acceptable.
// An empty candidate is never an error. Rules apply in order and the first
// failure wins: format, past, weekend, and for the end role, before other.
func ValidateBoundary(candidate string, role Role, other *Date, today Date) string {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return ""
	}

	d, err := ParseDate(candidate)
	if err != nil {
		return fmt.Sprintf(msgFormat, role)
	}

	if d.Before(today) {
		return fmt.Sprintf(msgPast, role)
	}

	if d.IsWeekend() {
		if role == RoleEnd {
			return msgEndWeekend
		}
		return msgStartWeekend
	}

	if role == RoleEnd && other != nil && d.Before(*other) {
		return msgBeforeStart
	}

	return ""
}
