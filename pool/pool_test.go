package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type item struct {
	value int
}

func TestPool(t *testing.T) {
	allocated := 0
	p := NewPool(
		func() *item { allocated++; return &item{} },
		func(i *item) { i.value = 0 },
		func(*item) {},
	)

	v := p.Get()
	require.NotNil(t, v)
	require.Equal(t, 1, allocated)
	v.value = 42
	require.EqualValues(t, 1, p.Stats().Outstanding())

	p.Put(v, nil)
	// sync.Pool may drop items at any time, so only the reset is asserted
	require.Equal(t, 0, v.value)

	stats := p.Stats()
	require.EqualValues(t, 1, stats.Allocated)
	require.EqualValues(t, 1, stats.Borrowed)
	require.EqualValues(t, 1, stats.Returned)
	require.Zero(t, stats.Outstanding())
}

func TestPoolAllocFailure(t *testing.T) {
	p := NewPool(
		func() *item { return nil },
		func(*item) {},
		func(*item) {},
	)
	require.Nil(t, p.Get())

	stats := p.Stats()
	require.EqualValues(t, 1, stats.Failed)
	require.Zero(t, stats.Borrowed)
}
