package brain

import "time"

// Loop runs a Field one frame at a time on behalf of its host. The host calls Tick and
// Draw once per display refresh; Stop is the exit flag checked before every frame, so
// once it is set no further step or draw happens. Draw only renders a state it has not
// rendered yet, so a host drawing faster than it ticks keeps one pass per step.
type Loop struct {
	Field    *Field
	Renderer *Renderer

	last    time.Duration
	started bool
	stopped bool
	paused  bool
	dirty   bool // Field changed since the last render
}

// NewLoop wires a field to its renderer
func NewLoop(field *Field, renderer *Renderer) *Loop {
	return &Loop{Field: field, Renderer: renderer, dirty: true}
}

// Tick advances the field to the host clock reading now. The first tick after start or
// resume only records the clock. Returns false once the loop is stopped.
func (l *Loop) Tick(now time.Duration) bool {
	if l.stopped {
		return false
	}
	if l.paused {
		return true
	}
	if !l.started {
		l.started = true
		l.last = now
		return true
	}

	dt := now - l.last
	l.last = now
	l.Field.Step(float64(dt) / float64(time.Millisecond))
	l.dirty = true
	return true
}

// Draw renders the current frame if the field stepped since the last render; otherwise
// the canvas is left as it is. Returns false once the loop is stopped.
func (l *Loop) Draw(c Canvas) bool {
	if l.stopped {
		return false
	}
	if l.dirty {
		l.Renderer.Render(l.Field, c)
		l.dirty = false
	}
	return true
}

// Invalidate makes the next Draw render even without a step, for a fresh canvas
func (l *Loop) Invalidate() {
	l.dirty = true
}

// SetPaused freezes the simulation; drawing continues with the last state
func (l *Loop) SetPaused(paused bool) {
	if l.paused == paused {
		return
	}
	l.paused = paused
	// Don't count the paused interval as frame time
	l.started = false
}

// Paused reports whether the simulation is frozen
func (l *Loop) Paused() bool {
	return l.paused
}

// Stop sets the exit flag. It is idempotent.
func (l *Loop) Stop() {
	l.stopped = true
}

// Running reports whether the loop still accepts frames
func (l *Loop) Running() bool {
	return !l.stopped
}
