package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/san-kum/gravsim/internal/particle"
	"github.com/san-kum/gravsim/internal/sim"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Count     int                `json:"count"`
	Ticks     int                `json:"ticks"`
	G         float64            `json:"g"`
	BoxSize   float64            `json:"box_size"`
	Force     [3]float64         `json:"force"`
	Wraps     int                `json:"wraps"`
	Metrics   map[string]float64 `json:"metrics"`
}

// FrameRow is one particle at one recorded tick.
type FrameRow struct {
	Tick int     `csv:"tick"`
	ID   int     `csv:"id"`
	Mass float64 `csv:"mass"`
	X    float64 `csv:"x"`
	Y    float64 `csv:"y"`
	Z    float64 `csv:"z"`
	VX   float64 `csv:"vx"`
	VY   float64 `csv:"vy"`
	VZ   float64 `csv:"vz"`
	AX   float64 `csv:"ax"`
	AY   float64 `csv:"ay"`
	AZ   float64 `csv:"az"`
}

// Save writes a run directory and returns its id. meta.ID and
// meta.Timestamp are filled in when empty.
func (s *Store) Save(meta RunMetadata, frames []sim.Frame) (string, error) {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("run_%d", meta.Timestamp.UnixNano())
	}
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := s.writeMetadata(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, framesFile))
	if err != nil {
		return "", err
	}

	rows := toRows(frames)
	if err := gocsv.Marshal(rows, csvFile); err != nil {
		csvFile.Close()
		return "", fmt.Errorf("writing %s: %w", framesFile, err)
	}
	if err := csvFile.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", framesFile, err)
	}

	return meta.ID, nil
}

func (s *Store) writeMetadata(meta RunMetadata) error {
	metaFile, err := os.Create(filepath.Join(s.baseDir, meta.ID, metadataFile))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		metaFile.Close()
		return err
	}
	return metaFile.Close()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadFrames reads the recorded frames back, grouped by tick in file order.
// A recording closed before its first frame has an empty file and yields no
// frames.
func (s *Store) LoadFrames(runID string) ([]sim.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return []sim.Frame{}, nil
	}

	var rows []FrameRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("reading %s: %w", framesFile, err)
	}
	return fromRows(rows), nil
}

func toRows(frames []sim.Frame) []FrameRow {
	rows := make([]FrameRow, 0)
	for _, f := range frames {
		for _, p := range f.Particles {
			rows = append(rows, FrameRow{
				Tick: f.Tick, ID: p.ID, Mass: p.Mass,
				X: p.Position.X, Y: p.Position.Y, Z: p.Position.Z,
				VX: p.Velocity.X, VY: p.Velocity.Y, VZ: p.Velocity.Z,
				AX: p.Acceleration.X, AY: p.Acceleration.Y, AZ: p.Acceleration.Z,
			})
		}
	}
	return rows
}

func fromRows(rows []FrameRow) []sim.Frame {
	frames := make([]sim.Frame, 0)
	for _, r := range rows {
		if len(frames) == 0 || frames[len(frames)-1].Tick != r.Tick {
			frames = append(frames, sim.Frame{Tick: r.Tick})
		}
		f := &frames[len(frames)-1]
		f.Particles = append(f.Particles, particle.State{
			ID:           r.ID,
			Mass:         r.Mass,
			Position:     r3.Vec{X: r.X, Y: r.Y, Z: r.Z},
			Velocity:     r3.Vec{X: r.VX, Y: r.VY, Z: r.VZ},
			Acceleration: r3.Vec{X: r.AX, Y: r.AY, Z: r.AZ},
		})
	}
	return frames
}
