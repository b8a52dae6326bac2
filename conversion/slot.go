package conversion

import (
	"context"
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avadapt/format"
	"github.com/xaionaro-go/avadapt/logger"
)

// Slot exclusively owns at most one Converter.
//
// A Converter is only ever constructed by Recreate and only ever destroyed
// by Recreate or Free. Slot is not safe for concurrent use.
type Slot[P format.Params[P]] struct {
	Factory   Factory[P]
	converter Converter[P]
	builds    uint64
}

func NewSlot[P format.Params[P]](factory Factory[P]) *Slot[P] {
	return &Slot[P]{
		Factory: factory,
	}
}

// Converter returns the owned converter, or nil.
func (s *Slot[P]) Converter() Converter[P] {
	return s.converter
}

// Builds returns how many converters were constructed in the lifetime of the slot.
func (s *Slot[P]) Builds() uint64 {
	return s.builds
}

func (s *Slot[P]) current() *format.Pair[P] {
	if s.converter == nil {
		return nil
	}
	params := s.converter.Params()
	return &params
}

// Recreate makes sure the slot holds a converter for exactly the given
// tuple, or nothing if no conversion is needed. It returns true if a new
// converter was built.
func (s *Slot[P]) Recreate(
	ctx context.Context,
	params format.Pair[P],
) (_ret bool, _err error) {
	logger.Tracef(ctx, "Recreate: %s", params)
	defer func() { logger.Tracef(ctx, "/Recreate: %s: %v %v", params, _ret, _err) }()

	decision := DecideRebuild(s.current(), params)
	switch decision {
	case DecisionNoneNeeded:
		if err := s.Free(ctx); err != nil {
			logger.Errorf(ctx, "unable to close the converter that is not needed anymore: %v", err)
		}
		return false, nil
	case DecisionReuse:
		return false, nil
	case DecisionRebuild:
	default:
		return false, fmt.Errorf("unexpected decision: %s", decision)
	}

	logger.Debugf(ctx, "recreating the conversion context: %s", params)
	if err := s.Free(ctx); err != nil {
		logger.Errorf(ctx, "unable to close the previous converter: %v", err)
	}
	if s.Factory == nil {
		return false, fmt.Errorf("converter factory is not set")
	}

	c := s.Factory(ctx, params)
	if c == nil {
		return false, fmt.Errorf("unable to construct a converter for %s: %w", params, ErrAllocation)
	}
	s.builds++
	if err := c.Setup(ctx); err != nil {
		if closeErr := c.Close(ctx); closeErr != nil {
			logger.Errorf(ctx, "unable to close the converter after a failed setup: %v", closeErr)
		}
		return false, fmt.Errorf("unable to set up the converter for %s: %w", params, err)
	}
	s.converter = c
	return true, nil
}

// Convert passes the frame through the converter, or returns it as is if
// there is no converter.
func (s *Slot[P]) Convert(
	ctx context.Context,
	in *astiav.Frame,
) (*astiav.Frame, error) {
	if s.converter == nil {
		return in, nil
	}
	return s.converter.Convert(ctx, in)
}

// Free closes the converter, if any. It is safe to call any number of times.
func (s *Slot[P]) Free(ctx context.Context) error {
	if s.converter == nil {
		return nil
	}
	c := s.converter
	s.converter = nil
	if err := c.Close(ctx); err != nil {
		return fmt.Errorf("unable to close %s: %w", c.Params(), err)
	}
	return nil
}
