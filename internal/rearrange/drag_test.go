package rearrange

import (
	"testing"

	"SeatShuffler/internal/board"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDragAdapter_DropOnSeatSwaps(t *testing.T) {
	t.Parallel()

	e, b := newTestEngine(t)
	a := NewDragAdapter(e)
	seven := b.FindNumber(7)
	two := b.FindNumber(2)
	others := map[*board.Cell]int{}
	for _, c := range b.Cells() {
		if c.Occupied && c != seven && c != two {
			others[c] = c.Number()
		}
	}
	require.Len(t, others, 8)

	a.Handle(DragEvent{Type: DragStart, Cell: seven})
	a.Handle(DragEvent{Type: DragEnter, Cell: b.At(0, 1)})
	a.Handle(DragEvent{Type: DragLeave, Cell: b.At(0, 1)})
	a.Handle(DragEvent{Type: DragEnter, Cell: two})
	a.Handle(DragEvent{Type: DragOver, Cell: two})
	assert.True(t, two.DragOver())
	assert.False(t, b.At(0, 1).DragOver())

	require.True(t, a.Handle(DragEvent{Type: Drop, Cell: two}))
	a.Handle(DragEvent{Type: DragEnd, Cell: seven})

	assert.Equal(t, 2, seven.Number())
	assert.Equal(t, 7, two.Number())
	for c, n := range others {
		assert.Equal(t, n, c.Number())
	}
	assert.Equal(t, Idle, e.Phase())
}

func TestDragAdapter_DragLeaveOfOtherCellKeepsTarget(t *testing.T) {
	t.Parallel()

	e, b := newTestEngine(t)
	a := NewDragAdapter(e)
	a.Handle(DragEvent{Type: DragStart, Cell: b.At(0, 0)})
	a.Handle(DragEvent{Type: DragEnter, Cell: b.At(1, 1)})
	a.Handle(DragEvent{Type: DragLeave, Cell: b.At(0, 1)})
	assert.Same(t, b.At(1, 1), e.Target())
	a.Handle(DragEvent{Type: DragLeave, Cell: nil})
	assert.Same(t, b.At(1, 1), e.Target())
}

func TestDragAdapter_NoSwapWithoutValidDrop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		events func(b *board.Board) []DragEvent
	}{
		{
			name: "released outside every seat",
			events: func(b *board.Board) []DragEvent {
				return []DragEvent{
					{Type: DragStart, Cell: b.At(0, 0)},
					{Type: DragEnter, Cell: b.At(1, 1)},
					{Type: DragLeave, Cell: b.At(1, 1)},
					{Type: DragEnd, Cell: b.At(0, 0)},
				}
			},
		},
		{
			name: "dropped on placeholder",
			events: func(b *board.Board) []DragEvent {
				return []DragEvent{
					{Type: DragStart, Cell: b.At(0, 0)},
					{Type: DragEnter, Cell: b.At(3, 1)},
					{Type: Drop, Cell: b.At(3, 1)},
					{Type: DragEnd, Cell: b.At(0, 0)},
				}
			},
		},
		{
			name: "dropped on itself",
			events: func(b *board.Board) []DragEvent {
				return []DragEvent{
					{Type: DragStart, Cell: b.At(0, 0)},
					{Type: DragEnter, Cell: b.At(0, 1)},
					{Type: DragEnter, Cell: b.At(0, 0)},
					{Type: Drop, Cell: b.At(0, 0)},
					{Type: DragEnd, Cell: b.At(0, 0)},
				}
			},
		},
		{
			name: "drag started on placeholder",
			events: func(b *board.Board) []DragEvent {
				return []DragEvent{
					{Type: DragStart, Cell: b.At(3, 2)},
					{Type: DragEnter, Cell: b.At(0, 0)},
					{Type: Drop, Cell: b.At(0, 0)},
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, b := newTestEngine(t)
			a := NewDragAdapter(e)
			before := b.Numbers()
			for _, ev := range tt.events(b) {
				assert.False(t, a.Handle(ev))
			}
			assert.Equal(t, before, b.Numbers())
			assert.Equal(t, Idle, e.Phase())
			for _, c := range b.Cells() {
				assert.False(t, c.Dragging())
				assert.False(t, c.DragOver())
			}
		})
	}
}

func TestDragAdapter_IgnoresTouchGestures(t *testing.T) {
	t.Parallel()

	e, b := newTestEngine(t)
	touch := NewTouchAdapter(e, nil)
	drag := NewDragAdapter(e)

	touch.Handle(TouchEvent{Type: TouchStart, Cell: b.At(0, 0), Touches: []board.Point{{X: 40, Y: 40}}})
	assert.False(t, drag.Handle(DragEvent{Type: Drop, Cell: b.At(0, 1)}))
	drag.Handle(DragEvent{Type: DragEnd})
	assert.Equal(t, Dragging, e.Phase(), "a drag end does not cancel a touch gesture")
}

func TestDragEventType_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, DragOver.Valid())
	assert.False(t, DragEventType("click").Valid())
	assert.True(t, TouchCancel.Valid())
	assert.False(t, TouchEventType("tap").Valid())
}
