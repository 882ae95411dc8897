package analysis

import "time"

// DefaultPause is the courtesy delay between provider calls
const DefaultPause = time.Second

// Pacer is called once after every provider request
type Pacer interface {
	Pause()
}

// PacerFunc adapts a plain function to Pacer
type PacerFunc func()

func (f PacerFunc) Pause() { f() }

// FixedPacer blocks for a constant duration
type FixedPacer time.Duration

func (p FixedPacer) Pause() {
	if p > 0 {
		time.Sleep(time.Duration(p))
	}
}

// NoPacing never waits
var NoPacing Pacer = PacerFunc(func() {})
