// Package rearrange lets a user exchange the seat numbers of two occupied
// cells with a drag gesture. Native drag events and touch events are turned
// into the same three gesture calls: Begin, UpdateTarget and End.
package rearrange

import (
	"time"

	"SeatShuffler/internal/board"
	"SeatShuffler/internal/clock"

	"go.uber.org/zap"
)

// DefaultSwapCue is how long both cells of a swap keep the swapped mark.
const DefaultSwapCue = 300 * time.Millisecond

// Modality names the input device that started a gesture.
type Modality string

const (
	ModalityPointer Modality = "pointer"
	ModalityTouch   Modality = "touch"
)

// Phase is the engine's state.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// session is the single live gesture.
type session struct {
	modality Modality
	source   *board.Cell
	target   *board.Cell
	proxy    *Proxy
}

// Engine tracks the one live drag gesture over a board.
// It is not safe for concurrent use; callers serialise access.
type Engine struct {
	board   *board.Board
	clock   clock.Clock
	cue     time.Duration
	logger  *zap.Logger
	session *session
}

// Option configures an Engine.
type Option func(*Engine)

// WithSwapCue overrides how long the swapped mark stays visible.
func WithSwapCue(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.cue = d
		}
	}
}

// WithLogger attaches a logger for gesture transitions.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine bound to b. b may be nil until the first
// layout is generated; every gesture is ignored meanwhile.
func NewEngine(b *board.Board, clk clock.Clock, opts ...Option) *Engine {
	if clk == nil {
		clk = clock.NewSystem()
	}
	e := &Engine{
		board:  b,
		clock:  clk,
		cue:    DefaultSwapCue,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Board returns the board the engine currently operates on.
func (e *Engine) Board() *board.Board { return e.board }

// Rebind cancels any live gesture and moves the engine to b.
func (e *Engine) Rebind(b *board.Board) {
	e.Cancel()
	e.board = b
}

// Phase reports whether a gesture is live.
func (e *Engine) Phase() Phase {
	if e.session == nil {
		return Idle
	}
	return Dragging
}

// Modality returns the input modality of the live gesture.
func (e *Engine) Modality() (Modality, bool) {
	if e.session == nil {
		return "", false
	}
	return e.session.modality, true
}

// Source returns the cell being dragged, or nil when idle.
func (e *Engine) Source() *board.Cell {
	if e.session == nil {
		return nil
	}
	return e.session.source
}

// Target returns the marked drop target, or nil.
func (e *Engine) Target() *board.Cell {
	if e.session == nil {
		return nil
	}
	return e.session.target
}

// Proxy returns the floating touch proxy of the live gesture.
func (e *Engine) Proxy() (Proxy, bool) {
	if e.session == nil || e.session.proxy == nil {
		return Proxy{}, false
	}
	return *e.session.proxy, true
}

// Begin starts a gesture on source. It is ignored while another gesture is
// live or when source is not an occupied cell of the bound board.
func (e *Engine) Begin(m Modality, source *board.Cell) bool {
	if e.session != nil {
		e.logger.Debug("gesture ignored: another gesture is live", zap.String("modality", string(m)))
		return false
	}
	if !e.occupied(source) {
		return false
	}
	e.session = &session{modality: m, source: source}
	source.SetDragging(true)
	e.logger.Debug("gesture started",
		zap.String("modality", string(m)),
		zap.Int("number", source.Number()),
	)
	return true
}

// UpdateTarget marks candidate as the prospective drop target. Passing nil,
// the source itself, a placeholder or a foreign cell clears the mark.
func (e *Engine) UpdateTarget(candidate *board.Cell) {
	s := e.session
	if s == nil {
		return
	}
	if s.target == candidate {
		return
	}
	if s.target != nil {
		s.target.SetDragOver(false)
		s.target = nil
	}
	if candidate == s.source || !e.occupied(candidate) {
		return
	}
	s.target = candidate
	candidate.SetDragOver(true)
}

// End finishes the gesture. With commit set and a valid target marked, the
// two seat numbers are exchanged and both cells show the swapped cue.
// It reports whether a swap happened.
func (e *Engine) End(commit bool) bool {
	s := e.session
	if s == nil {
		return false
	}
	e.session = nil

	s.source.SetDragging(false)
	if s.target != nil {
		s.target.SetDragOver(false)
	}
	if e.board != nil {
		e.board.ClearMarks()
	}

	if !commit || s.target == nil {
		e.logger.Debug("gesture discarded", zap.String("modality", string(s.modality)))
		return false
	}

	from, to := s.source.Number(), s.target.Number()
	if err := e.board.Swap(s.source, s.target); err != nil {
		e.logger.Debug("gesture discarded", zap.Error(err))
		return false
	}
	until := e.clock.Now().Add(e.cue)
	s.source.MarkSwapped(until)
	s.target.MarkSwapped(until)

	e.logger.Debug("seats swapped",
		zap.String("modality", string(s.modality)),
		zap.Int("source", from),
		zap.Int("target", to),
	)
	return true
}

// Cancel drops the live gesture without touching any seat number.
func (e *Engine) Cancel() {
	e.End(false)
}

func (e *Engine) occupied(c *board.Cell) bool {
	return c != nil && e.board != nil && c.Occupied && e.board.Contains(c)
}
