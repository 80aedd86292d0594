package metrics

import (
	"math"

	"github.com/san-kum/gravsim/internal/particle"
	"gonum.org/v1/gonum/stat"
)

// PeakSpeed is the highest single-particle speed seen during a run.
type PeakSpeed struct {
	peak float64
}

func NewPeakSpeed() *PeakSpeed { return &PeakSpeed{} }

func (p *PeakSpeed) Name() string { return "peak_speed" }

func (p *PeakSpeed) Observe(set []particle.State, tick int) {
	for i := range set {
		p.peak = math.Max(p.peak, set[i].Speed())
	}
}

func (p *PeakSpeed) Value() float64 { return p.peak }
func (p *PeakSpeed) Reset()         { p.peak = 0 }

// MeanSpeed averages the per-tick mean particle speed, weighted by mass.
type MeanSpeed struct {
	means []float64
	buf   []float64
	wts   []float64
}

func NewMeanSpeed() *MeanSpeed { return &MeanSpeed{} }

func (m *MeanSpeed) Name() string { return "mean_speed" }

func (m *MeanSpeed) Observe(set []particle.State, tick int) {
	if len(set) == 0 {
		return
	}
	m.buf = m.buf[:0]
	m.wts = m.wts[:0]
	for i := range set {
		m.buf = append(m.buf, set[i].Speed())
		m.wts = append(m.wts, set[i].Mass)
	}
	m.means = append(m.means, stat.Mean(m.buf, m.wts))
}

func (m *MeanSpeed) Value() float64 {
	if len(m.means) == 0 {
		return 0
	}
	return stat.Mean(m.means, nil)
}

func (m *MeanSpeed) Reset() { m.means = m.means[:0] }
