package avcontext

import (
	"fmt"

	"github.com/xaionaro-go/avadapt/codec"
	"github.com/xaionaro-go/avadapt/types"
)

// ErrCodecOpen means the codec handle could not be activated. The context
// is unusable after that: Close it, and retry with a new handle if needed.
type ErrCodecOpen struct {
	MediaType types.MediaType
	Err       error
}

func (e ErrCodecOpen) Error() string {
	return fmt.Sprintf("cannot open the %s codec: %v", e.MediaType, e.Err)
}

func (e ErrCodecOpen) Unwrap() error {
	return e.Err
}

var ErrAllocation = types.ErrAllocation

type ErrUnsupportedFormat = codec.ErrUnsupportedFormat
