package sim

import (
	"github.com/san-kum/gravsim/internal/particle"
)

// Metric accumulates a scalar over the ticks of a run.
type Metric interface {
	Name() string
	Observe(set []particle.State, tick int)
	Value() float64
	Reset()
}

// Observer is notified after every tick with the post-tick set. The slice is
// live; observers that keep it must copy.
type Observer interface {
	OnTick(tick int, set []particle.State, wrapped int)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(tick int, set []particle.State, wrapped int)

func (f ObserverFunc) OnTick(tick int, set []particle.State, wrapped int) { f(tick, set, wrapped) }

type Config struct {
	Ticks         int
	ValidateState bool
	// RecordEvery keeps a frame every N ticks (0 disables recording).
	RecordEvery int
}

func DefaultConfig() Config {
	return Config{
		Ticks:         1000,
		ValidateState: true,
	}
}

// Frame is a copy of the set at a given tick.
type Frame struct {
	Tick      int
	Particles []particle.State
}

type Result struct {
	Frames     []Frame
	Metrics    map[string]float64
	TicksTaken int
	Wraps      int
	Errors     []error
}
