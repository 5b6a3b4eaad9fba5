// Package world holds the static collidable geometry of a level as an ordered,
// immutable set of named axis-aligned bounding boxes.
package world

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"
)

var (
	// ErrDuplicateName is returned when two entries share a name
	ErrDuplicateName = errors.New("duplicate box name")
	// ErrEmptyName is returned for an entry without a name
	ErrEmptyName = errors.New("empty box name")
)

// maxPushOutPasses bounds the number of separation passes in PushOut
const maxPushOutPasses = 8

// Entry is a named bounding box used to build a World
type Entry struct {
	Name string
	Box  cube.BBox
}

// World is an ordered set of static bounding boxes. It is never mutated after New,
// so it can be shared read-only between the controller and the renderer.
// A nil *World behaves like an empty one.
type World struct {
	byName *orderedmap.OrderedMap[string, cube.BBox]
	boxes  []cube.BBox
}

// New builds a world from entries, preserving their order
func New(entries ...Entry) (*World, error) {
	w := &World{
		byName: orderedmap.NewOrderedMap[string, cube.BBox](),
		boxes:  make([]cube.BBox, 0, len(entries)),
	}

	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyName)
		}
		if _, exists := w.byName.Get(e.Name); exists {
			return nil, fmt.Errorf("entry %d (%q): %w", i, e.Name, ErrDuplicateName)
		}
		w.byName.Set(e.Name, e.Box)
		w.boxes = append(w.boxes, e.Box)
	}

	return w, nil
}

// Empty returns a world without geometry
func Empty() *World {
	w, _ := New()
	return w
}

// BoxAround returns a box of the given full size centred on center
func BoxAround(center, size mgl32.Vec3) cube.BBox {
	half := size.Mul(0.5)
	min := center.Sub(half)
	max := center.Add(half)
	return cube.Box(min.X(), min.Y(), min.Z(), max.X(), max.Y(), max.Z())
}

// Len returns the number of boxes
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return len(w.boxes)
}

// Boxes returns a copy of the boxes in insertion order
func (w *World) Boxes() []cube.BBox {
	if w == nil {
		return nil
	}
	out := make([]cube.BBox, len(w.boxes))
	copy(out, w.boxes)
	return out
}

// Names returns the box names in insertion order
func (w *World) Names() []string {
	if w == nil {
		return nil
	}
	return w.byName.Keys()
}

// Box returns the box registered under name
func (w *World) Box(name string) (cube.BBox, bool) {
	if w == nil {
		return cube.BBox{}, false
	}
	return w.byName.Get(name)
}

// Collides reports whether bb overlaps any box in the world.
// It does not modify any state, so identical inputs always yield identical results.
func (w *World) Collides(bb cube.BBox) bool {
	if w == nil {
		return false
	}
	for _, b := range w.boxes {
		if bb.IntersectsWith(b) {
			return true
		}
	}
	return false
}

// Raycast returns the nearest intersection of the segment from origin along dir
// (normalised here) of length maxDist with any box in the world.
func (w *World) Raycast(origin, dir mgl32.Vec3, maxDist float32) (mgl32.Vec3, bool) {
	if w == nil || dir.LenSqr() == 0 || maxDist <= 0 {
		return mgl32.Vec3{}, false
	}
	end := origin.Add(dir.Normalize().Mul(maxDist))

	var (
		closest mgl32.Vec3
		best    = maxDist * maxDist
		hit     bool
	)
	for _, b := range w.boxes {
		result, ok := trace.BBoxIntercept(b, origin, end)
		if !ok {
			continue
		}
		p := result.Position()
		if d := p.Sub(origin).LenSqr(); d <= best {
			best = d
			closest = p
			hit = true
		}
	}
	return closest, hit
}

// PushOut returns the horizontal translation that moves bb out of every box it
// overlaps, choosing the shallowest axis per box. ok is false when bb still
// overlaps geometry after a bounded number of passes.
func (w *World) PushOut(bb cube.BBox) (push mgl32.Vec3, ok bool) {
	if w == nil {
		return push, true
	}
	for pass := 0; pass < maxPushOutPasses; pass++ {
		moved := false
		for _, b := range w.boxes {
			if !bb.IntersectsWith(b) {
				continue
			}
			step := separate(bb, b)
			push = push.Add(step)
			bb = bb.Translate(step)
			moved = true
		}
		if !moved {
			return push, true
		}
	}
	return push, !w.Collides(bb)
}

// separate returns the smallest X or Z translation that moves a out of b
func separate(a, b cube.BBox) mgl32.Vec3 {
	// a tiny margin keeps the result from touching b within IntersectsWith's epsilon
	const margin = 1e-3

	candidates := [4]mgl32.Vec3{
		{b.Max().X() - a.Min().X() + margin, 0, 0},
		{-(a.Max().X() - b.Min().X() + margin), 0, 0},
		{0, 0, b.Max().Z() - a.Min().Z() + margin},
		{0, 0, -(a.Max().Z() - b.Min().Z() + margin)},
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if math32.Abs(c.X())+math32.Abs(c.Z()) < math32.Abs(best.X())+math32.Abs(best.Z()) {
			best = c
		}
	}
	return best
}

// Fingerprint returns an xxh3 hash of the box names and bounds in order.
// Two worlds with the same layout have the same fingerprint.
func (w *World) Fingerprint() uint64 {
	h := xxh3.New()
	if w == nil {
		return h.Sum64()
	}
	var buf [4]byte
	for _, name := range w.byName.Keys() {
		b, _ := w.byName.Get(name)
		_, _ = h.WriteString(name)
		for _, v := range [6]float32{
			b.Min().X(), b.Min().Y(), b.Min().Z(),
			b.Max().X(), b.Max().Y(), b.Max().Z(),
		} {
			binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
			_, _ = h.Write(buf[:])
		}
	}
	return h.Sum64()
}
