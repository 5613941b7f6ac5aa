package calendar

import "testing"

func TestValidateBoundary(t *testing.T) {
	today := d("2025-06-02")
	start := d("2025-06-10")

	tests := []struct {
		name      string
		candidate string
		role      Role
		other     *Date
		want      string
	}{
		{"empty is skipped", "", RoleStart, nil, ""},
		{"blank is skipped", "   ", RoleEnd, &start, ""},
		{"malformed", "06/10/2025", RoleStart, nil, "Start date must be in YYYY-MM-DD format."},
		{"start in the past", "2025-05-30", RoleStart, nil, "Start date cannot be in the past."},
		{"past wins over weekend", "2025-06-01", RoleEnd, nil, "End date cannot be in the past."},
		{"today is allowed", "2025-06-02", RoleStart, nil, ""},
		{"start on Saturday", "2025-06-07", RoleStart, nil, "Start date cannot be a weekend (Sat/Sun)."},
		{"end on Sunday", "2025-06-08", RoleEnd, &start, "End date cannot be a weekend."},
		{"end before start", "2025-06-09", RoleEnd, &start, "End date cannot be before the start date."},
		{"end equal to start", "2025-06-10", RoleEnd, &start, ""},
		{"end without start", "2025-06-03", RoleEnd, nil, ""},
		{"start ignores other", "2025-06-03", RoleStart, &start, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateBoundary(tt.candidate, tt.role, tt.other, today); got != tt.want {
				t.Errorf("ValidateBoundary(%q, %v) = %q, want %q", tt.candidate, tt.role, got, tt.want)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole("Start"); err != nil || r != RoleStart {
		t.Errorf("ParseRole(Start) = %v, %v", r, err)
	}
	if r, err := ParseRole("end"); err != nil || r != RoleEnd {
		t.Errorf("ParseRole(end) = %v, %v", r, err)
	}
	if _, err := ParseRole("middle"); err == nil {
		t.Error("ParseRole(middle) expected error")
	}
}
