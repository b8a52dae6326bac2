// Package stats smooths the measurements the tools report.
package stats

import (
	indicators "github.com/lmpizarro/go_ehlers_indicators"
	"golang.org/x/exp/constraints"
)

// MAMA is the MESA adaptive moving average over the last len(window)
// samples. It is not safe for concurrent use.
type MAMA[T constraints.Integer | constraints.Float] struct {
	FastLimit float64
	SlowLimit float64

	window  []float64
	ordered []float64
	next    int
	count   int
	last    T
}

func NewMAMA[T constraints.Integer | constraints.Float](
	windowSize int,
	fastLimit, slowLimit float64,
) *MAMA[T] {
	if windowSize < 1 {
		windowSize = 1
	}
	return &MAMA[T]{
		FastLimit: fastLimit,
		SlowLimit: slowLimit,
		window:    make([]float64, windowSize),
		ordered:   make([]float64, windowSize),
	}
}

// Update adds a sample and returns the current average. Until the
// window is filled the sample itself is returned.
func (m *MAMA[T]) Update(v T) T {
	m.window[m.next] = float64(v)
	m.next = (m.next + 1) % len(m.window)
	m.count++
	if !m.Valid() {
		m.last = v
		return v
	}

	// oldest first
	n := copy(m.ordered, m.window[m.next:])
	copy(m.ordered[n:], m.window[:m.next])

	result := indicators.MAMA(m.ordered, m.FastLimit, m.SlowLimit)
	m.last = T(result[len(result)-1])
	return m.last
}

// Last returns what the last Update returned.
func (m *MAMA[T]) Last() T {
	return m.last
}

func (m *MAMA[T]) Count() int {
	return m.count
}

func (m *MAMA[T]) Valid() bool {
	return m.count >= len(m.window)
}
