package termview

import (
	"strings"
	"testing"

	"github.com/username/date-picker/internal/calendar"
)

func TestRenderPlain(t *testing.T) {
	rng := calendar.DateRange{
		Start: calendar.MustParseDate("2025-06-01"),
		End:   calendar.MustParseDate("2025-06-30"),
	}
	disabled := calendar.NewDisabledSet(calendar.MustParseDate("2025-06-10"))
	selected := calendar.MustParseDate("2025-06-11")

	g := calendar.BuildGrid(rng.Start.MonthOf(), rng, disabled, &selected, calendar.MustParseDate("2025-06-02"))
	out := Render(g, PlainStyles())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2+len(g.Weeks) {
		t.Fatalf("Render() produced %d lines, want %d:\n%s", len(lines), 2+len(g.Weeks), out)
	}
	if lines[0] != "- June 2025 -" {
		t.Errorf("header = %q, want %q", lines[0], "- June 2025 -")
	}
	if !strings.Contains(lines[1], "Su") || !strings.Contains(lines[1], "Sa") {
		t.Errorf("weekday row = %q", lines[1])
	}
	if !strings.Contains(out, "10x") {
		t.Error("excluded day not marked disabled")
	}
	if !strings.Contains(out, "11*") {
		t.Error("selected day not marked")
	}
	if !strings.Contains(out, "7x") {
		t.Error("Saturday not marked disabled")
	}
}

func TestRenderNavigationMarkers(t *testing.T) {
	rng := calendar.DateRange{
		Start: calendar.MustParseDate("2025-06-01"),
		End:   calendar.MustParseDate("2025-08-30"),
	}

	g := calendar.BuildGrid(calendar.MustParseDate("2025-07-01").MonthOf(), rng, calendar.DisabledSet{}, nil, rng.Start)
	out := Render(g, PlainStyles())

	if first := strings.SplitN(out, "\n", 2)[0]; first != "< July 2025 >" {
		t.Errorf("header = %q, want %q", first, "< July 2025 >")
	}
}
