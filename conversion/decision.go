package conversion

import (
	"fmt"

	"github.com/xaionaro-go/avadapt/format"
)

type Decision int

const (
	DecisionUndefined = Decision(iota)

	// DecisionNoneNeeded means the input and output layouts are equal,
	// no converter may exist.
	DecisionNoneNeeded

	// DecisionReuse means the existing converter was built for
	// exactly this tuple.
	DecisionReuse

	// DecisionRebuild means a new converter must be built.
	DecisionRebuild
)

func (d Decision) String() string {
	switch d {
	case DecisionUndefined:
		return "undefined"
	case DecisionNoneNeeded:
		return "none_needed"
	case DecisionReuse:
		return "reuse"
	case DecisionRebuild:
		return "rebuild"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// DecideRebuild compares the tuple the current converter was built for
// (nil if there is no converter) with the proposed one.
func DecideRebuild[P format.Params[P]](
	current *format.Pair[P],
	proposed format.Pair[P],
) Decision {
	if !proposed.NeedsConversion() {
		return DecisionNoneNeeded
	}
	if current != nil && current.Equal(proposed) {
		return DecisionReuse
	}
	return DecisionRebuild
}
