package avcontext

import (
	"github.com/asticode/go-astiav"
)

// CodecHandle is an encoder or decoder state owned by an adaptation
// context. It is implemented by *astiav.CodecContext.
type CodecHandle interface {
	Open(c *astiav.Codec, options *astiav.Dictionary) error
	Free()
}

// Stream is the source of the time base. It is borrowed: the
// adaptation context never frees it. It is implemented by *astiav.Stream.
type Stream interface {
	TimeBase() astiav.Rational
}

var (
	_ CodecHandle = (*astiav.CodecContext)(nil)
	_ Stream      = (*astiav.Stream)(nil)
)
