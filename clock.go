package homehive

import "time"

// Clock abstracts the wall clock so that year-boundary decisions (sealing,
// rollover, mutability) are deterministic in tests. Every store that needs to
// know "what year is it" takes a Clock; production code passes SystemClock().
type Clock interface {
	// Today returns the current date.
	Today() Date
}

type systemClock struct{}

func (systemClock) Today() Date { return NewDate(time.Now().Date()) }

// SystemClock returns a Clock backed by the real wall clock.
func SystemClock() Clock { return systemClock{} }

// FixedClock returns a Clock frozen on a given date.
func FixedClock(on Date) Clock { return fixedClock{on} }

type fixedClock struct{ on Date }

func (c fixedClock) Today() Date { return c.on }
