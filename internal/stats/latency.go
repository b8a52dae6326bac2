package stats

import (
	"time"
)

// Latency tracks how long an operation takes.
type Latency struct {
	avg   *MAMA[int64]
	total time.Duration
	max   time.Duration
}

func NewLatency(windowSize int) *Latency {
	return &Latency{
		avg: NewMAMA[int64](windowSize, 0.5, 0.05),
	}
}

// Observe records a measurement and returns the smoothed latency.
func (l *Latency) Observe(d time.Duration) time.Duration {
	l.total += d
	if d > l.max {
		l.max = d
	}
	return time.Duration(l.avg.Update(int64(d)))
}

// Since is Observe(time.Since(start)).
func (l *Latency) Since(start time.Time) time.Duration {
	return l.Observe(time.Since(start))
}

func (l *Latency) Smoothed() time.Duration {
	return time.Duration(l.avg.Last())
}

func (l *Latency) Mean() time.Duration {
	if l.avg.Count() == 0 {
		return 0
	}
	return l.total / time.Duration(l.avg.Count())
}

func (l *Latency) Max() time.Duration {
	return l.max
}

func (l *Latency) Count() int {
	return l.avg.Count()
}
