package ili9341

import (
	"sync"

	"periph.io/x/conn/v3/gpio"
)

// Batch acquires the bus and asserts CS until release is called, so that a
// sequence of commands and pixel data is not interleaved with another user of
// the bus.
//
// Batches nest: only the outermost release deasserts CS and unlocks the bus.
// Every drawing method runs in a batch; wrap several of them to keep the bus
// for the whole sequence:
//
//	defer dev.Batch()()
func (d *Dev) Batch() (release func()) {
	if d.depth == 0 {
		d.bus.Lock()
		if d.cs != nil {
			d.fail(d.cs.Out(gpio.Low))
		}
	}
	d.depth++
	var once sync.Once
	return func() { once.Do(d.release) }
}

func (d *Dev) release() {
	d.depth--
	if d.depth > 0 {
		return
	}
	if d.cs != nil {
		d.fail(d.cs.Out(gpio.High))
	}
	d.bus.Unlock()
}
