package calendar

import (
	"go.uber.org/zap"
)

// CompositeSource implements Source with fallback strategy
// Primary: exclusion file
// Fallback: generated busy days
type CompositeSource struct {
	primary  Source
	fallback Source
	logger   *zap.Logger
}

// NewCompositeSource creates a new CompositeSource
func NewCompositeSource(primary, fallback Source, logger *zap.Logger) *CompositeSource {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CompositeSource{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Disabled asks the primary first and falls back when it fails or has nothing to offer
func (cs *CompositeSource) Disabled(rng DateRange) (DisabledSet, error) {
	set, err := cs.primary.Disabled(rng)
	if err == nil && set.Len() > 0 {
		return set, nil
	}

	if err != nil {
		cs.logger.Warn("Primary exclusion source failed, falling back",
			zap.Stringer("range", rng),
			zap.Error(err))
	} else {
		cs.logger.Debug("Primary exclusion source is empty, falling back",
			zap.Stringer("range", rng))
	}

	return cs.fallback.Disabled(rng)
}

// Note returns the first note either source keeps for d
func (cs *CompositeSource) Note(d Date) string {
	for _, src := range []Source{cs.primary, cs.fallback} {
		if n, ok := src.(Noter); ok {
			if note := n.Note(d); note != "" {
				return note
			}
		}
	}
	return ""
}
