// Package maze describes a maze level: its floor, walls, spawn point and win zone.
// A Layout is plain data; Build turns it into the collidable world geometry.
package maze

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/leterax/go-maze/pkg/world"
)

// ErrInvalidLayout is wrapped by every validation failure
var ErrInvalidLayout = errors.New("invalid maze layout")

// Material names understood by the renderer
const (
	MaterialCheckerboard = "checkerboard"
	MaterialConcrete     = "concrete"
	MaterialTile         = "vintage-tile"
	MaterialGoal         = "yellow"
)

// Box is a named axis-aligned box given by its centre and full size
type Box struct {
	Name     string     `yaml:"name"`
	Center   mgl32.Vec3 `yaml:"center"`
	Size     mgl32.Vec3 `yaml:"size"`
	Material string     `yaml:"material"`
}

// WinZone is the sphere the player has to enter, plus the box drawn inside it
type WinZone struct {
	Center mgl32.Vec3 `yaml:"center"`
	Radius float32    `yaml:"radius"`
	Marker Box        `yaml:"marker"`
}

// Layout is a complete maze level
type Layout struct {
	Name  string     `yaml:"name"`
	Spawn mgl32.Vec3 `yaml:"spawn"`
	Win   WinZone    `yaml:"win"`
	Floor Box        `yaml:"floor"`
	Walls []Box      `yaml:"walls"`
}

// Parse decodes and validates a YAML layout
func Parse(r io.Reader) (*Layout, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var l Layout
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("failed to decode maze layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// LoadFile reads a YAML layout from path
func LoadFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open maze file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Validate checks that the layout can be built and played
func (l *Layout) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("%w: layout without a name", ErrInvalidLayout)
	}
	if l.Win.Radius <= 0 {
		return fmt.Errorf("%w: win radius must be positive, got %v", ErrInvalidLayout, l.Win.Radius)
	}

	seen := make(map[string]struct{}, len(l.Walls)+1)
	for _, b := range append([]Box{l.Floor}, l.Walls...) {
		if b.Name == "" {
			return fmt.Errorf("%w: box without a name", ErrInvalidLayout)
		}
		if _, dup := seen[b.Name]; dup {
			return fmt.Errorf("%w: duplicate box %q", ErrInvalidLayout, b.Name)
		}
		seen[b.Name] = struct{}{}

		if err := validSize(b.Size); err != nil {
			return fmt.Errorf("%w: box %q: %v", ErrInvalidLayout, b.Name, err)
		}
	}

	if err := validSize(l.Win.Marker.Size); err != nil {
		return fmt.Errorf("%w: win marker: %v", ErrInvalidLayout, err)
	}
	return nil
}

// validSize accepts boxes that are flat along at most one axis, like a floor plane
func validSize(size mgl32.Vec3) error {
	flat := 0
	for _, v := range size {
		if v < 0 {
			return fmt.Errorf("negative size %v", size)
		}
		if v == 0 {
			flat++
		}
	}
	if flat > 1 {
		return fmt.Errorf("degenerate size %v", size)
	}
	return nil
}

// Build returns the collidable geometry: the floor followed by the walls in order.
// The win marker is not collidable.
func (l *Layout) Build() (*world.World, error) {
	entries := make([]world.Entry, 0, len(l.Walls)+1)
	entries = append(entries, world.Entry{Name: l.Floor.Name, Box: world.BoxAround(l.Floor.Center, l.Floor.Size)})
	for _, w := range l.Walls {
		entries = append(entries, world.Entry{Name: w.Name, Box: world.BoxAround(w.Center, w.Size)})
	}

	wld, err := world.New(entries...)
	if err != nil {
		return nil, fmt.Errorf("failed to build world for %q: %w", l.Name, err)
	}
	return wld, nil
}

// Drawables returns every box that should be rendered: floor, walls and the win marker
func (l *Layout) Drawables() []Box {
	out := make([]Box, 0, len(l.Walls)+2)
	out = append(out, l.Floor)
	out = append(out, l.Walls...)
	out = append(out, l.Win.Marker)
	return out
}
