package classroom

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"SeatShuffler/internal/board"
	"SeatShuffler/internal/rearrange"
	"SeatShuffler/internal/seating"
)

// Session is one teacher's working classroom: the current board and the
// gesture engine bound to it. All access goes through mu.
type Session struct {
	ID string

	mu       sync.Mutex
	plan     *seating.Plan
	board    *board.Board
	engine   *rearrange.Engine
	drag     *rearrange.DragAdapter
	touch    *rearrange.TouchAdapter
	created  time.Time
	lastSeen time.Time
}

func newSession(id string, engine *rearrange.Engine, now time.Time) *Session {
	return &Session{
		ID:       id,
		engine:   engine,
		drag:     rearrange.NewDragAdapter(engine),
		touch:    rearrange.NewTouchAdapter(engine, nil),
		created:  now,
		lastSeen: now,
	}
}

// LastSeen returns when the session was last used.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touchedAt(now time.Time) {
	if now.After(s.lastSeen) {
		s.lastSeen = now
	}
}

// bind installs a freshly rendered board. Any live gesture on the previous
// board is cancelled.
func (s *Session) bind(plan seating.Plan, b *board.Board) {
	s.plan = &plan
	s.board = b
	s.engine.Rebind(b)
}

func (s *Session) cell(id string) (*board.Cell, error) {
	if id == "" {
		return nil, nil
	}
	c := s.board.ByID(id)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCell, id)
	}
	return c, nil
}

// view projects the board plus the touch proxy, if any.
func (s *Session) view(now time.Time) board.View {
	v := s.board.View(now)
	v.Title = displayTitle(s.plan.Request.ClassName)
	if p, ok := s.engine.Proxy(); ok {
		v.Proxy = &board.ProxyView{Number: p.Number, Rect: p.Rect}
	}
	return v
}

func displayTitle(className string) string {
	className = strings.TrimSpace(className)
	if className == "" {
		return "Seat shuffle result"
	}
	return className + " seat shuffle result"
}

func printTitle(className string) string {
	className = strings.TrimSpace(className)
	if className == "" {
		return "Seating plan"
	}
	return className
}
