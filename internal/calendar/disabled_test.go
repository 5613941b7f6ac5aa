package calendar

import (
	"testing"

	"github.com/username/date-picker/pkg/random"
)

// zeroSource always answers 0, which makes the Fisher-Yates shuffle predictable
type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

func TestParseExcluded(t *testing.T) {
	set, errs := ParseExcluded(" 2025-06-10, ,2025-06-12,bogus,2025-06-10 ")

	if len(errs) != 1 {
		t.Errorf("errors = %v, want exactly one", errs)
	}
	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2", set.Len())
	}
	if !set.Has(d("2025-06-10")) || !set.Has(d("2025-06-12")) {
		t.Errorf("set = %v, want 2025-06-10 and 2025-06-12", set.Strings())
	}

	empty, errs := ParseExcluded("")
	if empty.Len() != 0 || len(errs) != 0 {
		t.Errorf("ParseExcluded(\"\") = %v, %v; want empty", empty.Strings(), errs)
	}
}

func TestDisabledSet(t *testing.T) {
	var zero DisabledSet
	if zero.Has(d("2025-06-10")) || zero.Len() != 0 {
		t.Error("zero DisabledSet is not empty")
	}

	set := NewDisabledSet(d("2025-06-12"), d("2025-06-10"), d("2025-07-01"))

	want := []string{"2025-06-10", "2025-06-12", "2025-07-01"}
	got := set.Strings()
	if len(got) != len(want) {
		t.Fatalf("Strings() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Strings()[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if june := set.InMonth(d("2025-06-01").MonthOf()); len(june) != 2 {
		t.Errorf("InMonth(June) = %v, want 2 dates", june)
	}
}

func TestGenerateDisabled_Scripted(t *testing.T) {
	rng := DateRange{Start: d("2025-06-01"), End: d("2025-06-30")}

	set := GenerateDisabled(rng, zeroSource{})

	// June 2025 has 21 weekdays; an always-zero source leaves indices 1..5 in front
	want := []string{"2025-06-03", "2025-06-04", "2025-06-05", "2025-06-06", "2025-06-09"}
	got := set.Strings()
	if len(got) != len(want) {
		t.Fatalf("GenerateDisabled() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GenerateDisabled()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestGenerateDisabled_ClipsBoundaryMonths(t *testing.T) {
	// June 25-30 has four weekdays, July 1-2 two: every one of them is blocked
	rng := DateRange{Start: d("2025-06-25"), End: d("2025-07-02")}

	set := GenerateDisabled(rng, random.NewSource(99))

	want := []string{"2025-06-25", "2025-06-26", "2025-06-27", "2025-06-30", "2025-07-01", "2025-07-02"}
	got := set.Strings()
	if len(got) != len(want) {
		t.Fatalf("GenerateDisabled() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GenerateDisabled()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestGenerateDisabled_WeekendOnlyRange(t *testing.T) {
	rng := DateRange{Start: d("2025-06-07"), End: d("2025-06-08")}

	if set := GenerateDisabled(rng, random.NewSource(1)); set.Len() != 0 {
		t.Errorf("GenerateDisabled() over a weekend = %v, want empty", set.Strings())
	}
}

func TestGenerateDisabled_SeedIsReproducible(t *testing.T) {
	rng := DateRange{Start: d("2025-06-01"), End: d("2025-09-30")}

	first := GenerateDisabled(rng, random.NewSource(2025)).Strings()
	second := GenerateDisabled(rng, random.NewSource(2025)).Strings()

	if len(first) != 20 {
		t.Fatalf("GenerateDisabled() picked %d dates over four months, want 20", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced %v and %v", first, second)
		}
	}
}
