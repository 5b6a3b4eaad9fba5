// Package input turns raw pointer and keyboard events into per-frame snapshots.
//
// Event sources push immutable Event records with Push, which is safe to call
// from any goroutine, as is SetViewport. The frame loop drains the queue once at the start of a
// frame, reads the snapshot, and advances it with Update once the frame's
// consumers have read their deltas.
package input

import (
	"sync"
)

// Snapshot is the input state at a point in time.
// MouseX and MouseY are relative to the viewport centre, in pixels.
type Snapshot struct {
	LeftButton  bool
	RightButton bool
	MouseX      float32
	MouseY      float32
	MouseXDelta float32
	MouseYDelta float32
	Keys        map[Key]bool
}

// Clone returns a deep copy of the snapshot
func (s Snapshot) Clone() Snapshot {
	c := s
	c.Keys = make(map[Key]bool, len(s.Keys))
	for k, v := range s.Keys {
		c.Keys[k] = v
	}
	return c
}

// Sampler accumulates input events into a current snapshot and keeps the
// previous frame's snapshot to derive mouse deltas.
type Sampler struct {
	// mu guards pending and the viewport size
	mu      sync.Mutex
	pending []Event
	width   float32
	height  float32

	current  Snapshot
	previous *Snapshot
}

// NewSampler creates a sampler for a viewport of the given size
func NewSampler(width, height int) *Sampler {
	s := &Sampler{
		current: Snapshot{Keys: make(map[Key]bool)},
	}
	s.SetViewport(width, height)
	return s
}

// SetViewport sets the viewport used to centre pointer coordinates
func (s *Sampler) SetViewport(width, height int) {
	s.mu.Lock()
	s.width = float32(width)
	s.height = float32(height)
	s.mu.Unlock()
}

// Push enqueues an event. It never blocks beyond a mutex hand-off.
func (s *Sampler) Push(e Event) {
	s.mu.Lock()
	s.pending = append(s.pending, e)
	s.mu.Unlock()
}

// Drain applies all queued events in arrival order and returns how many were applied.
func (s *Sampler) Drain() int {
	s.mu.Lock()
	events := s.pending
	s.pending = nil
	centerX, centerY := s.width/2, s.height/2
	s.mu.Unlock()

	for _, e := range events {
		s.apply(e, centerX, centerY)
	}
	return len(events)
}

func (s *Sampler) apply(e Event, centerX, centerY float32) {
	switch e.Kind {
	case PointerMove:
		s.pointerMoved(e.X-centerX, e.Y-centerY)
	case PointerDown:
		s.pointerMoved(e.X-centerX, e.Y-centerY)
		s.setButton(e.Button, true)
	case PointerUp:
		s.pointerMoved(e.X-centerX, e.Y-centerY)
		s.setButton(e.Button, false)
	case KeyDown:
		s.current.Keys[e.Key] = true
	case KeyUp:
		s.current.Keys[e.Key] = false
	}
}

func (s *Sampler) pointerMoved(x, y float32) {
	s.current.MouseX = x
	s.current.MouseY = y

	if s.previous == nil {
		prev := s.current.Clone()
		s.previous = &prev
	}
	s.recomputeDelta()
}

func (s *Sampler) setButton(b Button, down bool) {
	switch b {
	case ButtonLeft:
		s.current.LeftButton = down
	case ButtonRight:
		s.current.RightButton = down
	}
}

func (s *Sampler) recomputeDelta() {
	s.current.MouseXDelta = s.current.MouseX - s.previous.MouseX
	s.current.MouseYDelta = s.current.MouseY - s.previous.MouseY
}

// Update advances the sampler by one frame: deltas are recomputed against the
// previous snapshot, which is then replaced with a copy of the current one.
// Consumers must read the frame's deltas before calling Update.
func (s *Sampler) Update(_ float32) {
	if s.previous == nil {
		return
	}
	s.recomputeDelta()
	prev := s.current.Clone()
	s.previous = &prev

	// current and previous now hold the same position
	s.current.MouseXDelta = 0
	s.current.MouseYDelta = 0
}

// Key reports whether key k is held. Keys never seen report false.
func (s *Sampler) Key(k Key) bool {
	return s.current.Keys[k]
}

// IsReady reports whether a pointer event has been observed.
// Deltas are zero until then.
func (s *Sampler) IsReady() bool {
	return s.previous != nil
}

// MouseDelta returns the pointer movement since the previous frame
func (s *Sampler) MouseDelta() (dx, dy float32) {
	return s.current.MouseXDelta, s.current.MouseYDelta
}

// Buttons returns the left and right button state
func (s *Sampler) Buttons() (left, right bool) {
	return s.current.LeftButton, s.current.RightButton
}

// Snapshot returns a copy of the current snapshot
func (s *Sampler) Snapshot() Snapshot {
	return s.current.Clone()
}

// Previous returns a copy of the previous snapshot, if one exists
func (s *Sampler) Previous() (Snapshot, bool) {
	if s.previous == nil {
		return Snapshot{}, false
	}
	return s.previous.Clone(), true
}
