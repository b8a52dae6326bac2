// pts.go defines the presentation timestamp counter.

package types

import (
	"fmt"
)

// PTS is a presentation timestamp counter that may be unset.
//
// The zero value is unset.
type PTS struct {
	value int64
	isSet bool
}

func NewPTS(v int64) PTS {
	if v < 0 {
		return PTS{}
	}
	return PTS{value: v, isSet: true}
}

func (p PTS) Get() (int64, bool) {
	return p.value, p.isSet
}

func (p PTS) IsSet() bool {
	return p.isSet
}

// Set replaces the value; a negative value unsets the counter.
func (p *PTS) Set(v int64) {
	*p = NewPTS(v)
}

// Update moves the counter to v unless that would move it backwards.
// Negative values are ignored. It returns false if v was rejected.
func (p *PTS) Update(v int64) bool {
	if v < 0 || (p.isSet && v < p.value) {
		return false
	}
	p.value, p.isSet = v, true
	return true
}

// Advance moves the counter forward by delta; an unset counter starts from zero.
func (p *PTS) Advance(delta int64) {
	if delta < 0 {
		return
	}
	p.value += delta
	p.isSet = true
}

func (p *PTS) Reset() {
	*p = PTS{}
}

// Seconds converts the counter to seconds using the given time base.
// It returns 0 if the counter is unset, not positive or the time base is zero.
func (p PTS) Seconds(timeBase Rational) float64 {
	if !p.isSet || p.value <= 0 {
		return 0
	}
	return float64(p.value) * timeBase.Float64()
}

func (p PTS) String() string {
	if !p.isSet {
		return "unset"
	}
	return fmt.Sprintf("%d", p.value)
}
