package rearrange

import "SeatShuffler/internal/board"

// DragEventType enumerates the native drag events a seat cell listens to.
type DragEventType string

const (
	DragStart DragEventType = "dragstart"
	DragEnter DragEventType = "dragenter"
	DragOver  DragEventType = "dragover"
	DragLeave DragEventType = "dragleave"
	Drop      DragEventType = "drop"
	DragEnd   DragEventType = "dragend"
)

// Valid reports whether t is a known drag event.
func (t DragEventType) Valid() bool {
	switch t {
	case DragStart, DragEnter, DragOver, DragLeave, Drop, DragEnd:
		return true
	}
	return false
}

// DragEvent is one native drag event. Cell is the element the event fired
// on; nil means the pointer is outside every cell.
type DragEvent struct {
	Type DragEventType
	Cell *board.Cell
}

// DragAdapter translates native drag events into gesture calls.
type DragAdapter struct {
	engine *Engine
}

// NewDragAdapter returns an adapter driving e.
func NewDragAdapter(e *Engine) *DragAdapter {
	return &DragAdapter{engine: e}
}

// Handle applies ev and reports whether it produced a swap.
func (a *DragAdapter) Handle(ev DragEvent) bool {
	e := a.engine
	if ev.Type != DragStart && !a.owns() {
		return false
	}

	switch ev.Type {
	case DragStart:
		e.Begin(ModalityPointer, ev.Cell)
	case DragEnter, DragOver:
		e.UpdateTarget(ev.Cell)
	case DragLeave:
		if ev.Cell != nil && e.Target() == ev.Cell {
			e.UpdateTarget(nil)
		}
	case Drop:
		e.UpdateTarget(ev.Cell)
		return e.End(true)
	case DragEnd:
		e.End(false)
	}
	return false
}

// owns reports whether the live gesture was started by a native drag.
func (a *DragAdapter) owns() bool {
	m, ok := a.engine.Modality()
	return ok && m == ModalityPointer
}
