// Package frame allocates and recycles the raw media frames.
package frame

import (
	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avadapt/pool"
)

var Pool = pool.NewPool(
	astiav.AllocFrame,
	func(p *astiav.Frame) { p.Unref() },
	func(p *astiav.Frame) { p.Free() },
)
