// Package avconv converts between libav values and their Go counterparts.
package avconv

import (
	"math"
	"time"

	"github.com/asticode/go-astiav"
)

// NoDuration is what Duration returns for astiav.NoPtsValue.
const NoDuration = time.Duration(math.MinInt64)

// Duration converts a timestamp t expressed in timeBase units.
func Duration(t int64, timeBase astiav.Rational) time.Duration {
	if t == astiav.NoPtsValue {
		return NoDuration
	}
	if timeBase.Den() == 0 {
		return 0
	}
	ns := float64(t) * float64(time.Second) * float64(timeBase.Num()) / float64(timeBase.Den())
	return time.Duration(math.Round(ns))
}

// FromDuration is the inverse of Duration.
func FromDuration(d time.Duration, timeBase astiav.Rational) int64 {
	if d == NoDuration {
		return astiav.NoPtsValue
	}
	if timeBase.Num() == 0 {
		return 0
	}
	return int64(math.Round(float64(d) * float64(timeBase.Den()) / (float64(timeBase.Num()) * float64(time.Second))))
}
