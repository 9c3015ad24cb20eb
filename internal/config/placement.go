package config

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ytget/clock-face/internal/model"
	"github.com/ytget/clock-face/internal/platform"
)

// placementFile mirrors the JSON schema with optional fields so that missing
// keys can be told apart from zero values
type placementFile struct {
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
	Scale *float64 `json:"scale"`
}

// PlacementStore loads and saves the clock placement at a fixed path
type PlacementStore struct {
	path   string
	limits model.ScaleLimits
}

// NewPlacementStore creates a store for path. Loaded scales are clamped to limits.
func NewPlacementStore(path string, limits model.ScaleLimits) *PlacementStore {
	if !limits.Valid() {
		limits = model.DefaultScaleLimits()
	}
	return &PlacementStore{path: path, limits: limits}
}

// Path returns the placement file path
func (s *PlacementStore) Path() string {
	return s.path
}

// Load returns the stored placement. Missing, unreadable or malformed data is
// replaced field by field with defaults derived from monitor (may be nil).
// Defaults sit 200 px from the monitor origin, which the Fyne host always
// reports as (0, 0).
func (s *PlacementStore) Load(monitor *model.Rect) model.Placement {
	p, err := s.load(monitor)
	if err != nil {
		log.Printf("Using default placement: %v", err)
	}
	return p
}

func (s *PlacementStore) load(monitor *model.Rect) (model.Placement, error) {
	p := model.DefaultPlacement(monitor)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return p, &ReadError{Path: s.path, Op: OpOpen, Err: err}
	}

	var file placementFile
	if err := json.Unmarshal(data, &file); err != nil {
		return p, &ReadError{Path: s.path, Op: OpDecode, Err: err}
	}

	var missing []string
	if file.X != nil {
		p.X = int(math.Round(*file.X))
	} else {
		missing = append(missing, "x")
	}
	if file.Y != nil {
		p.Y = int(math.Round(*file.Y))
	} else {
		missing = append(missing, "y")
	}
	if file.Scale != nil {
		p.Scale = s.limits.Clamp(*file.Scale)
	} else {
		missing = append(missing, "scale")
	}

	if len(missing) > 0 {
		return p, &ReadError{
			Path: s.path,
			Op:   OpField,
			Err:  fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", ")),
		}
	}
	return p, nil
}

// Save writes p in its rounded form, creating the parent directory if needed.
// Failures are logged and returned; callers may ignore them.
func (s *PlacementStore) Save(p model.Placement) error {
	err := s.save(p.Rounded())
	if err != nil {
		log.Printf("Failed to save placement: %v", err)
	}
	return err
}

func (s *PlacementStore) save(p model.Placement) error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(s.path)); err != nil {
		return &WriteError{Path: s.path, Op: OpMkdir, Err: err}
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return &WriteError{Path: s.path, Op: OpEncode, Err: err}
	}

	if err := platform.WriteFileAtomic(s.path, append(data, '\n')); err != nil {
		return &WriteError{Path: s.path, Op: OpWrite, Err: err}
	}
	return nil
}
