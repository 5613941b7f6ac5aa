package calendar

import (
	"github.com/username/date-picker/pkg/random"
	"go.uber.org/zap"
)

// Source supplies the disabled dates for a picker session
type Source interface {
	// Disabled returns the dates to block within (or around) rng
	Disabled(rng DateRange) (DisabledSet, error)
}

// Noter is implemented by sources that keep a note per blocked day
type Noter interface {
	Note(d Date) string
}

// ListSource serves an explicit, already parsed exclusion list
type ListSource struct {
	Set DisabledSet
}

// NewListSource parses a comma-separated exclusion list.
// Malformed entries are logged and dropped.
func NewListSource(raw string, logger *zap.Logger) *ListSource {
	if logger == nil {
		logger = zap.NewNop()
	}

	set, errs := ParseExcluded(raw)
	for _, err := range errs {
		logger.Warn("Skipping malformed excluded date", zap.Error(err))
	}

	return &ListSource{Set: set}
}

// Disabled returns the explicit list unchanged
func (ls *ListSource) Disabled(DateRange) (DisabledSet, error) {
	return ls.Set, nil
}

// RandomSource generates busy days with GenerateDisabled
type RandomSource struct {
	rand   random.Source
	logger *zap.Logger
}

// NewRandomSource creates a generator backed by src (nil seeds from the clock)
func NewRandomSource(src random.Source, logger *zap.Logger) *RandomSource {
	if src == nil {
		src = random.NewSource(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RandomSource{
		rand:   src,
		logger: logger,
	}
}

// Disabled generates a fresh set for rng
func (rs *RandomSource) Disabled(rng DateRange) (DisabledSet, error) {
	set := GenerateDisabled(rng, rs.rand)

	rs.logger.Debug("Generated disabled dates",
		zap.Stringer("range", rng),
		zap.Strings("dates", set.Strings()))

	return set, nil
}
