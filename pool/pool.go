// Package pool recycles objects that have to be freed explicitly (libav
// objects) and keeps count of them.
package pool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// ReuseMemory may be set to false to make every Get allocate; handy when
// hunting use-after-free bugs with sanitizers.
var ReuseMemory = true

type Pool[T any] struct {
	pool      sync.Pool
	resetFunc func(*T)

	allocated atomic.Int64
	failed    atomic.Int64
	borrowed  atomic.Int64
	returned  atomic.Int64
	finalized atomic.Int64
}

// Stats is a snapshot of the pool counters.
type Stats struct {
	Allocated int64
	Failed    int64
	Borrowed  int64
	Returned  int64
	Finalized int64
}

// Outstanding is how many objects were taken with Get and not given back
// with Put.
func (s Stats) Outstanding() int64 {
	return s.Borrowed - s.Returned
}

// NewPool creates a pool; objects that are garbage collected without
// being returned are freed with freeFunc.
func NewPool[T any](
	allocFunc func() *T,
	resetFunc func(*T),
	freeFunc func(*T),
) *Pool[T] {
	p := &Pool[T]{
		resetFunc: resetFunc,
	}
	p.pool.New = func() any {
		v := allocFunc()
		if v == nil {
			p.failed.Add(1)
			return (*T)(nil)
		}
		p.allocated.Add(1)
		runtime.SetFinalizer(v, func(v *T) {
			p.finalized.Add(1)
			freeFunc(v)
		})
		return v
	}
	return p
}

// Get returns nil if the allocation failed.
func (p *Pool[T]) Get() *T {
	v := p.pool.Get().(*T)
	if v != nil {
		p.borrowed.Add(1)
	}
	return v
}

// Put resets the items and makes them available to Get; nil items are
// ignored.
func (p *Pool[T]) Put(items ...*T) {
	for _, item := range items {
		if item == nil {
			continue
		}
		p.returned.Add(1)
		if !ReuseMemory {
			continue
		}
		p.resetFunc(item)
		p.pool.Put(item)
	}
}

func (p *Pool[T]) Stats() Stats {
	return Stats{
		Allocated: p.allocated.Load(),
		Failed:    p.failed.Load(),
		Borrowed:  p.borrowed.Load(),
		Returned:  p.returned.Load(),
		Finalized: p.finalized.Load(),
	}
}
