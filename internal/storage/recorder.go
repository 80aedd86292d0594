package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/san-kum/gravsim/internal/particle"
	"github.com/san-kum/gravsim/internal/sim"
)

// Recorder streams frames to a run directory while a viewer is running. It
// implements sim.Observer.
type Recorder struct {
	store         *Store
	meta          RunMetadata
	file          *os.File
	every         int
	headerWritten bool
	err           error
}

// NewRecorder creates the run directory and opens its frames file. Every
// every-th tick is written; every < 1 records all ticks.
func (s *Store) NewRecorder(meta RunMetadata, every int) (*Recorder, error) {
	if every < 1 {
		every = 1
	}
	id, err := s.Save(meta, nil)
	if err != nil {
		return nil, err
	}
	meta.ID = id
	loaded, err := s.Load(id)
	if err != nil {
		return nil, err
	}
	meta.Timestamp = loaded.Timestamp

	f, err := os.Create(filepath.Join(s.baseDir, id, framesFile))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", framesFile, err)
	}
	return &Recorder{store: s, meta: meta, file: f, every: every}, nil
}

func (r *Recorder) ID() string { return r.meta.ID }

func (r *Recorder) OnTick(tick int, set []particle.State, wrapped int) {
	r.meta.Wraps += wrapped
	r.meta.Ticks = tick
	if r.err != nil || tick%r.every != 0 {
		return
	}
	rows := toRows([]sim.Frame{{Tick: tick, Particles: set}})
	if !r.headerWritten {
		r.err = gocsv.Marshal(rows, r.file)
		r.headerWritten = true
	} else {
		r.err = gocsv.MarshalWithoutHeaders(rows, r.file)
	}
}

// Close flushes the frames file and rewrites the metadata with the final
// tick and wrap counts. The first write error, if any, is returned.
func (r *Recorder) Close(metrics map[string]float64) error {
	if err := r.file.Close(); err != nil && r.err == nil {
		r.err = err
	}
	if r.err != nil {
		return r.err
	}
	r.meta.Metrics = metrics
	return r.store.writeMetadata(r.meta)
}
