package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/particle"
	"github.com/san-kum/gravsim/internal/physics"
	"gonum.org/v1/gonum/spatial/r3"
)

// Simulator owns a particle set and the tunables applied to it. It is not
// safe for concurrent use; viewers drive it from a single frame loop.
type Simulator struct {
	set       []particle.State
	params    dynamo.Params
	stepper   *physics.Stepper
	metrics   []Metric
	observers []Observer
	tick      int
}

func New(set []particle.State, params dynamo.Params) *Simulator {
	return &Simulator{
		set:       set,
		params:    params,
		stepper:   physics.NewStepper(),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Particles returns the live set.
func (s *Simulator) Particles() []particle.State { return s.set }
func (s *Simulator) Params() dynamo.Params       { return s.params }
func (s *Simulator) Tick() int                   { return s.tick }

func (s *Simulator) SetParams(p dynamo.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.params = p
	return nil
}

func (s *Simulator) SetGravity(g float64) error {
	p := s.params
	p.G = g
	return s.SetParams(p)
}

func (s *Simulator) SetExternalForce(f r3.Vec) error {
	p := s.params
	p.ExternalForce = f
	return s.SetParams(p)
}

func (s *Simulator) SetBoxSize(size float64) error {
	p := s.params
	p.Box = dynamo.NewBox(size)
	return s.SetParams(p)
}

// Resize discards the current set and installs a new one. Sets are never
// grown or shrunk in place.
func (s *Simulator) Resize(set []particle.State) {
	s.set = set
}

// StopAll halts every particle.
func (s *Simulator) StopAll() {
	for i := range s.set {
		s.set[i].Stop()
	}
}

// Step advances the set by one tick and returns the number of wraps.
func (s *Simulator) Step() int {
	wrapped := s.stepper.Step(s.set, s.params)
	s.tick++
	for _, m := range s.metrics {
		m.Observe(s.set, s.tick)
	}
	for _, obs := range s.observers {
		obs.OnTick(s.tick, s.set, wrapped)
	}
	return wrapped
}

// Run performs cfg.Ticks ticks, checking ctx between ticks.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Frames:  make([]Frame, 0),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	if cfg.RecordEvery > 0 {
		result.Frames = append(result.Frames, Frame{Tick: s.tick, Particles: particle.Clone(s.set)})
	}

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			s.collect(result)
			return result, ctx.Err()
		default:
		}

		result.Wraps += s.Step()
		result.TicksTaken++

		if cfg.ValidateState {
			if idx := firstInvalid(s.set); idx >= 0 {
				err := dynamo.SimError{
					Tick:    s.tick,
					Message: fmt.Sprintf("particle %d has invalid state", s.set[idx].ID),
					Wrapped: dynamo.ErrInvalidState,
				}
				result.Errors = append(result.Errors, err)
				break
			}
		}

		if cfg.RecordEvery > 0 && result.TicksTaken%cfg.RecordEvery == 0 {
			result.Frames = append(result.Frames, Frame{Tick: s.tick, Particles: particle.Clone(s.set)})
		}
	}

	s.collect(result)
	return result, nil
}

func (s *Simulator) collect(result *Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", cfg.Ticks)
	}
	if cfg.RecordEvery < 0 {
		return fmt.Errorf("record interval must not be negative, got %d", cfg.RecordEvery)
	}
	return s.params.Validate()
}

func firstInvalid(set []particle.State) int {
	for i := range set {
		if !set[i].IsValid() {
			return i
		}
	}
	return -1
}
