package calendar

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

type failingSource struct{}

func (failingSource) Disabled(DateRange) (DisabledSet, error) {
	return DisabledSet{}, errors.New("unavailable")
}

func writeExclusionFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blocked.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write exclusion file: %v", err)
	}
	return path
}

func TestFileSource_Load(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	path := writeExclusionFile(t, `# blocked days
2025-06-10 team offsite

2025-06-12
not-a-date whatever
2025-06-13   quarterly review
`)

	fs := NewFileSource(path, logger)
	set, err := fs.Disabled(DateRange{})
	if err != nil {
		t.Fatalf("Disabled() error = %v", err)
	}

	if set.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (%v)", set.Len(), set.Strings())
	}
	if got := fs.Note(d("2025-06-10")); got != "team offsite" {
		t.Errorf("Note(2025-06-10) = %q, want %q", got, "team offsite")
	}
	if got := fs.Note(d("2025-06-13")); got != "quarterly review" {
		t.Errorf("Note(2025-06-13) = %q, want %q", got, "quarterly review")
	}
	if got := fs.Note(d("2025-06-12")); got != "" {
		t.Errorf("Note(2025-06-12) = %q, want empty", got)
	}
}

func TestFileSource_Missing(t *testing.T) {
	fs := NewFileSource(filepath.Join(t.TempDir(), "missing.txt"), nil)
	if _, err := fs.Disabled(DateRange{}); err == nil {
		t.Error("Disabled() expected error for missing file")
	}
}

func TestListSource(t *testing.T) {
	ls := NewListSource("2025-06-10,2025-06-31", nil)

	set, err := ls.Disabled(DateRange{})
	if err != nil {
		t.Fatalf("Disabled() error = %v", err)
	}
	if set.Len() != 1 || !set.Has(d("2025-06-10")) {
		t.Errorf("Disabled() = %v, want [2025-06-10]", set.Strings())
	}
}

func TestCompositeSource(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	rng := DateRange{Start: d("2025-06-01"), End: d("2025-06-30")}
	generated := NewRandomSource(zeroSource{}, logger)

	tests := []struct {
		name    string
		primary Source
		want    int
	}{
		{"explicit list wins", NewListSource("2025-06-10", logger), 1},
		{"empty list falls back to generator", NewListSource("", logger), MaxDisabledPerMonth},
		{"failing primary falls back", failingSource{}, MaxDisabledPerMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := NewCompositeSource(tt.primary, generated, logger)

			set, err := cs.Disabled(rng)
			if err != nil {
				t.Fatalf("Disabled() error = %v", err)
			}
			if set.Len() != tt.want {
				t.Errorf("Disabled() = %v, want %d dates", set.Strings(), tt.want)
			}
		})
	}
}

func TestCompositeSource_Note(t *testing.T) {
	path := writeExclusionFile(t, "2025-06-10 team offsite\n")
	cs := NewCompositeSource(NewFileSource(path, nil), NewRandomSource(zeroSource{}, nil), nil)

	if _, err := cs.Disabled(DateRange{Start: d("2025-06-01"), End: d("2025-06-30")}); err != nil {
		t.Fatalf("Disabled() error = %v", err)
	}
	if got := cs.Note(d("2025-06-10")); got != "team offsite" {
		t.Errorf("Note(2025-06-10) = %q, want %q", got, "team offsite")
	}
	if got := cs.Note(d("2025-06-11")); got != "" {
		t.Errorf("Note(2025-06-11) = %q, want empty", got)
	}
}
