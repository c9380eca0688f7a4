package rearrange

import "SeatShuffler/internal/board"

// TouchEventType enumerates the touch events a seat cell listens to.
type TouchEventType string

const (
	TouchStart  TouchEventType = "touchstart"
	TouchMove   TouchEventType = "touchmove"
	TouchEnd    TouchEventType = "touchend"
	TouchCancel TouchEventType = "touchcancel"
)

// Valid reports whether t is a known touch event.
func (t TouchEventType) Valid() bool {
	switch t {
	case TouchStart, TouchMove, TouchEnd, TouchCancel:
		return true
	}
	return false
}

// TouchEvent is one touch event. Cell is the element the listener is attached
// to (the touched seat for touchstart). Touches holds the active touch
// points; only the first one drives rearrangement.
type TouchEvent struct {
	Type    TouchEventType
	Cell    *board.Cell
	Touches []board.Point
}

// HitTester finds the cell under a point, the way the browser's
// elementFromPoint does once the proxy is hidden.
type HitTester interface {
	CellAt(p board.Point) *board.Cell
}

// TouchResult tells the caller what to do with the platform event.
type TouchResult struct {
	// PreventDefault suppresses scrolling for the duration of the gesture.
	PreventDefault bool
	Swapped        bool
}

// TouchAdapter translates touch events into gesture calls and keeps the
// floating proxy under the finger.
type TouchAdapter struct {
	engine *Engine
	hit    HitTester
}

// NewTouchAdapter returns an adapter driving e. A nil hit tester falls back
// to the geometry of the engine's current board.
func NewTouchAdapter(e *Engine, hit HitTester) *TouchAdapter {
	return &TouchAdapter{engine: e, hit: hit}
}

// Handle applies ev.
func (a *TouchAdapter) Handle(ev TouchEvent) TouchResult {
	e := a.engine
	switch ev.Type {
	case TouchStart:
		if len(ev.Touches) == 0 || e.Phase() != Idle {
			return TouchResult{}
		}
		if !e.Begin(ModalityTouch, ev.Cell) {
			return TouchResult{}
		}
		e.trackProxy(ev.Touches[0])
		return TouchResult{PreventDefault: true}

	case TouchMove:
		if !a.owns() {
			return TouchResult{}
		}
		if len(ev.Touches) > 0 {
			p := ev.Touches[0]
			e.trackProxy(p)
			e.UpdateTarget(a.hitTest(p))
		}
		return TouchResult{PreventDefault: true}

	case TouchEnd:
		if !a.owns() {
			return TouchResult{}
		}
		return TouchResult{PreventDefault: true, Swapped: e.End(true)}

	case TouchCancel:
		if !a.owns() {
			return TouchResult{}
		}
		e.End(false)
		return TouchResult{PreventDefault: true}
	}
	return TouchResult{}
}

func (a *TouchAdapter) hitTest(p board.Point) *board.Cell {
	if a.hit != nil {
		return a.hit.CellAt(p)
	}
	if b := a.engine.Board(); b != nil {
		return b.CellAt(p)
	}
	return nil
}

func (a *TouchAdapter) owns() bool {
	m, ok := a.engine.Modality()
	return ok && m == ModalityTouch
}
