package classroom

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"time"

	"SeatShuffler/internal/board"
	"SeatShuffler/internal/clock"
	"SeatShuffler/internal/seating"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 4, 7, 8, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, clk clock.Clock) *ClassroomService {
	t.Helper()
	seatingService := seating.NewSeatingService(seating.NewSource(1), nil)
	return NewClassroomService(NewStore(0), seatingService, clk, Options{SessionTTL: time.Hour}, nil)
}

func openWithLayout(t *testing.T, svc *ClassroomService, req GenerateRequest) (string, board.View) {
	t.Helper()
	id, err := svc.OpenSession()
	require.NoError(t, err)
	v, err := svc.Generate(id, req)
	require.NoError(t, err)
	return id, v
}

func cellWith(t *testing.T, v board.View, number int) board.CellView {
	t.Helper()
	for _, c := range v.Cells {
		if c.Occupied && c.Number == number {
			return c
		}
	}
	t.Fatalf("no cell holds %d", number)
	return board.CellView{}
}

func numbersOf(v board.View) []int {
	var out []int
	for _, c := range v.Cells {
		if c.Occupied {
			out = append(out, c.Number)
		}
	}
	return out
}

func centreOf(c board.CellView) board.Point {
	return board.Point{X: c.Rect.X + c.Rect.Width/2, Y: c.Rect.Y + c.Rect.Height/2}
}

func seed(v uint64) *uint64 { return &v }

func TestClassroomService_GenerateRendersLayout(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, clock.NewFixed(start))
	_, v := openWithLayout(t, svc, GenerateRequest{ClassName: "3-B", StudentCount: 37, ColumnCount: 6})

	assert.Equal(t, "3-B seat shuffle result", v.Title)
	assert.Equal(t, 7, v.Rows)
	assert.Equal(t, 6, v.Columns)
	assert.Len(t, v.Cells, 42)

	got := numbersOf(v)
	slices.Sort(got)
	want := make([]int, 37)
	for i := range want {
		want[i] = i + 1
	}
	assert.Equal(t, want, got)

	placeholders := 0
	for _, c := range v.Cells {
		if !c.Occupied {
			placeholders++
			assert.Equal(t, []string{board.ClassPlaceholder}, c.Classes)
		}
	}
	assert.Equal(t, 5, placeholders)
}

func TestClassroomService_SeedIsReproducible(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, clock.NewFixed(start))
	req := GenerateRequest{StudentCount: 20, ColumnCount: 4, Seed: seed(42)}
	_, a := openWithLayout(t, svc, req)
	_, b := openWithLayout(t, svc, req)
	assert.Equal(t, numbersOf(a), numbersOf(b))
	assert.NotEqual(t, a.BoardID, b.BoardID)
}

func TestClassroomService_GenerateRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, clock.NewFixed(start))
	id, err := svc.OpenSession()
	require.NoError(t, err)

	_, err = svc.Generate(id, GenerateRequest{StudentCount: 0, ColumnCount: 3})
	assert.ErrorIs(t, err, seating.ErrInvalidStudentCount)
	_, err = svc.Generate(id, GenerateRequest{StudentCount: 10, ColumnCount: 3, PerColumnDepth: []int{4, 3, 4}})
	assert.ErrorIs(t, err, seating.ErrDepthSum)
	_, err = svc.Generate("missing", GenerateRequest{StudentCount: 10, ColumnCount: 3})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.View(id)
	assert.ErrorIs(t, err, ErrNoLayout, "a failed generate leaves the session empty")
}

func TestClassroomService_DragSwapsTwoSeats(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, clock.NewFixed(start))
	id, v := openWithLayout(t, svc, GenerateRequest{StudentCount: 10, ColumnCount: 3, PerColumnDepth: []int{4, 3, 3}})
	before := numbersOf(v)
	seven, two := cellWith(t, v, 7), cellWith(t, v, 2)

	steps := []DragRequest{
		{Type: "dragstart", CellID: seven.ID},
		{Type: "dragenter", CellID: two.ID},
		{Type: "dragover", CellID: two.ID},
		{Type: "drop", CellID: two.ID},
	}
	var resp DragResponse
	for _, step := range steps {
		var err error
		resp, err = svc.Drag(id, step)
		require.NoError(t, err)
	}
	assert.True(t, resp.Swapped)

	after := numbersOf(resp.View)
	changed := 0
	for i := range before {
		if before[i] != after[i] {
			changed++
		}
	}
	assert.Equal(t, 2, changed)

	for _, c := range resp.View.Cells {
		switch c.ID {
		case seven.ID:
			assert.Equal(t, 2, c.Number)
			assert.Contains(t, c.Classes, board.ClassSwapped)
		case two.ID:
			assert.Equal(t, 7, c.Number)
			assert.Contains(t, c.Classes, board.ClassSwapped)
		}
	}

	resp, err := svc.Drag(id, DragRequest{Type: "dragend", CellID: seven.ID})
	require.NoError(t, err)
	assert.False(t, resp.Swapped)
}

func TestClassroomService_SwappedCueExpires(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(start)
	svc := newTestService(t, clk)
	id, v := openWithLayout(t, svc, GenerateRequest{StudentCount: 4, ColumnCount: 2})
	a, b := v.Cells[0], v.Cells[1]

	_, err := svc.Drag(id, DragRequest{Type: "dragstart", CellID: a.ID})
	require.NoError(t, err)
	resp, err := svc.Drag(id, DragRequest{Type: "drop", CellID: b.ID})
	require.NoError(t, err)
	require.True(t, resp.Swapped)

	clk.Advance(400 * time.Millisecond)
	v, err = svc.View(id)
	require.NoError(t, err)
	for _, c := range v.Cells {
		assert.NotContains(t, c.Classes, board.ClassSwapped)
	}
}

func TestClassroomService_TouchDragWithProxy(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, clock.NewFixed(start))
	id, v := openWithLayout(t, svc, GenerateRequest{StudentCount: 10, ColumnCount: 3, PerColumnDepth: []int{4, 3, 3}})
	seven, two := cellWith(t, v, 7), cellWith(t, v, 2)

	resp, err := svc.Touch(id, TouchRequest{Type: "touchstart", CellID: seven.ID, Touches: []board.Point{centreOf(seven)}})
	require.NoError(t, err)
	assert.True(t, resp.PreventDefault)
	require.NotNil(t, resp.View.Proxy)
	assert.Equal(t, 7, resp.View.Proxy.Number)

	resp, err = svc.Touch(id, TouchRequest{Type: "touchmove", Touches: []board.Point{centreOf(two)}})
	require.NoError(t, err)
	assert.True(t, resp.PreventDefault)
	for _, c := range resp.View.Cells {
		if c.ID == two.ID {
			assert.Contains(t, c.Classes, board.ClassDragOver)
		}
	}

	resp, err = svc.Touch(id, TouchRequest{Type: "touchend"})
	require.NoError(t, err)
	assert.True(t, resp.Swapped)
	assert.Nil(t, resp.View.Proxy)
	assert.Equal(t, 2, cellWith(t, resp.View, 2).Number)
	assert.Equal(t, seven.ID, cellWith(t, resp.View, 2).ID)
}

func TestClassroomService_RegenerateCancelsLiveDrag(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, clock.NewFixed(start))
	id, v := openWithLayout(t, svc, GenerateRequest{StudentCount: 6, ColumnCount: 2})

	_, err := svc.Touch(id, TouchRequest{Type: "touchstart", CellID: v.Cells[0].ID, Touches: []board.Point{centreOf(v.Cells[0])}})
	require.NoError(t, err)

	fresh, err := svc.Generate(id, GenerateRequest{StudentCount: 6, ColumnCount: 2})
	require.NoError(t, err)
	assert.Nil(t, fresh.Proxy)
	for _, c := range fresh.Cells {
		assert.NotContains(t, c.Classes, board.ClassDragging)
	}

	resp, err := svc.Touch(id, TouchRequest{Type: "touchend"})
	require.NoError(t, err)
	assert.False(t, resp.PreventDefault, "the cancelled gesture no longer owns touch events")

	_, err = svc.Drag(id, DragRequest{Type: "dragstart", CellID: v.Cells[0].ID})
	assert.ErrorIs(t, err, ErrUnknownCell, "cells of the replaced board are gone")
}

func TestClassroomService_GestureErrors(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, clock.NewFixed(start))
	id, err := svc.OpenSession()
	require.NoError(t, err)

	_, err = svc.Drag(id, DragRequest{Type: "dragstart"})
	assert.ErrorIs(t, err, ErrNoLayout)
	_, err = svc.Drag(id, DragRequest{Type: "click"})
	assert.ErrorIs(t, err, ErrUnknownEvent)
	_, err = svc.Touch(id, TouchRequest{Type: "tap"})
	assert.ErrorIs(t, err, ErrUnknownEvent)

	_, err = svc.Generate(id, GenerateRequest{StudentCount: 3, ColumnCount: 3})
	require.NoError(t, err)
	_, err = svc.Drag(id, DragRequest{Type: "dragstart", CellID: "nope"})
	assert.ErrorIs(t, err, ErrUnknownCell)

	resp, err := svc.Drag(id, DragRequest{Type: "drop"})
	require.NoError(t, err, "a drop outside every cell is silently ignored")
	assert.False(t, resp.Swapped)
}

func TestClassroomService_Roster(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, clock.NewFixed(start))
	id, v := openWithLayout(t, svc, GenerateRequest{ClassName: "Year 9 <Physics>", StudentCount: 5, ColumnCount: 2})

	var buf bytes.Buffer
	require.NoError(t, svc.WriteRoster(id, &buf))
	html := buf.String()
	assert.Contains(t, html, "<title>Year 9 &lt;Physics&gt;</title>")
	assert.Equal(t, len(numbersOf(v)), strings.Count(html, `<td class="seat">`))
}

func TestClassroomService_Balance(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, clock.NewFixed(start))
	resp, err := svc.Balance(BalanceRequest{StudentCount: 37, ColumnCount: 6})
	require.NoError(t, err)
	assert.Equal(t, []int{6, 6, 7, 6, 6, 6}, resp.PerColumnDepth)

	_, err = svc.Balance(BalanceRequest{StudentCount: 5, ColumnCount: 11})
	assert.ErrorIs(t, err, seating.ErrInvalidColumnCount)
}

func TestClassroomService_SessionLifecycle(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(start)
	svc := newTestService(t, clk)

	idle, err := svc.OpenSession()
	require.NoError(t, err)
	active, err := svc.OpenSession()
	require.NoError(t, err)

	clk.Advance(45 * time.Minute)
	_, err = svc.Generate(active, GenerateRequest{StudentCount: 4, ColumnCount: 2})
	require.NoError(t, err)

	clk.Advance(30 * time.Minute)
	assert.Equal(t, 1, svc.Sweep())

	_, err = svc.View(idle)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.View(active)
	assert.NoError(t, err)

	require.NoError(t, svc.CloseSession(active))
	assert.ErrorIs(t, svc.CloseSession(active), ErrSessionNotFound)
}

func TestClassroomService_SessionLimit(t *testing.T) {
	t.Parallel()

	svc := NewClassroomService(NewStore(1), seating.NewSeatingService(nil, nil), nil, Options{}, nil)
	_, err := svc.OpenSession()
	require.NoError(t, err)
	_, err = svc.OpenSession()
	assert.ErrorIs(t, err, ErrSessionLimit)
}
