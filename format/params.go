// Package format describes media layouts (the "format parameters") and
// pairs of them: the layout a frame comes in and the layout it must go out in.
package format

import (
	"fmt"
)

// Params is implemented by Video and Audio.
type Params[P any] interface {
	fmt.Stringer
	Equal(other P) bool
}

// Pair is the (input, output) tuple.
//
// For encoders Input is the layout from the application and Output is the
// layout passed into the encoder. For decoders Input is the layout from
// the decoder and Output is the layout passed into the application.
type Pair[P Params[P]] struct {
	Input  P
	Output P
}

func (p Pair[P]) NeedsConversion() bool {
	return !p.Input.Equal(p.Output)
}

func (p Pair[P]) Equal(other Pair[P]) bool {
	return p.Input.Equal(other.Input) && p.Output.Equal(other.Output)
}

func (p Pair[P]) String() string {
	return fmt.Sprintf("%s -> %s", p.Input, p.Output)
}
