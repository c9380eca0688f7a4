package classroom

import (
	"fmt"
	"io"
	"time"

	"SeatShuffler/internal/board"
	"SeatShuffler/internal/clock"
	"SeatShuffler/internal/rearrange"
	"SeatShuffler/internal/seating"

	"go.uber.org/zap"
)

// Options tune how sessions render and animate.
type Options struct {
	SwapCue    time.Duration
	Geometry   board.Geometry
	SessionTTL time.Duration
}

// ClassroomService runs seat layouts and rearrangement for every open session.
type ClassroomService struct {
	store   *Store
	seating *seating.SeatingService
	clock   clock.Clock
	opts    Options
	logger  *zap.Logger
}

func NewClassroomService(store *Store, seatingService *seating.SeatingService, clk clock.Clock, opts Options, logger *zap.Logger) *ClassroomService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.SwapCue <= 0 {
		opts.SwapCue = rearrange.DefaultSwapCue
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 2 * time.Hour
	}
	return &ClassroomService{
		store:   store,
		seating: seatingService,
		clock:   clk,
		opts:    opts,
		logger:  logger,
	}
}

// OpenSession creates an empty session and returns its id.
func (s *ClassroomService) OpenSession() (string, error) {
	now := s.clock.Now()
	sess, err := s.store.add(func(id string) *Session {
		engine := rearrange.NewEngine(nil, s.clock,
			rearrange.WithSwapCue(s.opts.SwapCue),
			rearrange.WithLogger(s.logger.With(zap.String("session_id", id))),
		)
		return newSession(id, engine, now)
	})
	if err != nil {
		return "", err
	}
	return sess.ID, nil
}

// CloseSession discards a session and its board.
func (s *ClassroomService) CloseSession(id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.logger.Info("session closed", zap.String("session_id", id))
	return nil
}

// Balance suggests centre-out column depths for the counts.
func (s *ClassroomService) Balance(req BalanceRequest) (BalanceResponse, error) {
	depths, err := s.seating.Balance(req.StudentCount, req.ColumnCount)
	if err != nil {
		return BalanceResponse{}, err
	}
	return BalanceResponse{PerColumnDepth: depths}, nil
}

// Generate shuffles a new layout for the session and renders it, replacing
// the previous board.
func (s *ClassroomService) Generate(id string, req GenerateRequest) (board.View, error) {
	var opts []seating.GenerateOption
	if req.Seed != nil {
		opts = append(opts, seating.WithSeed(*req.Seed))
	}
	plan, err := s.seating.Generate(req.layout(), opts...)
	if err != nil {
		return board.View{}, err
	}

	sess, err := s.store.Get(id)
	if err != nil {
		return board.View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	now := s.clock.Now()
	sess.touchedAt(now)
	sess.bind(plan, board.New(plan.Grid, s.opts.Geometry))

	s.logger.Info("layout generated",
		zap.String("session_id", id),
		zap.Int("students", plan.Request.StudentCount),
		zap.Ints("per_column_depth", plan.Request.PerColumnDepth),
	)
	return sess.view(now), nil
}

// View returns the session's current board.
func (s *ClassroomService) View(id string) (board.View, error) {
	var v board.View
	err := s.withBoard(id, func(sess *Session, now time.Time) error {
		v = sess.view(now)
		return nil
	})
	return v, err
}

// Drag applies a native drag event.
func (s *ClassroomService) Drag(id string, req DragRequest) (DragResponse, error) {
	typ := rearrange.DragEventType(req.Type)
	if !typ.Valid() {
		return DragResponse{}, fmt.Errorf("%w: %q", ErrUnknownEvent, req.Type)
	}

	var resp DragResponse
	err := s.withBoard(id, func(sess *Session, now time.Time) error {
		cell, err := sess.cell(req.CellID)
		if err != nil {
			return err
		}
		resp.Swapped = sess.drag.Handle(rearrange.DragEvent{Type: typ, Cell: cell})
		resp.View = sess.view(now)
		return nil
	})
	return resp, err
}

// Touch applies a touch event.
func (s *ClassroomService) Touch(id string, req TouchRequest) (TouchResponse, error) {
	typ := rearrange.TouchEventType(req.Type)
	if !typ.Valid() {
		return TouchResponse{}, fmt.Errorf("%w: %q", ErrUnknownEvent, req.Type)
	}

	var resp TouchResponse
	err := s.withBoard(id, func(sess *Session, now time.Time) error {
		cell, err := sess.cell(req.CellID)
		if err != nil {
			return err
		}
		res := sess.touch.Handle(rearrange.TouchEvent{Type: typ, Cell: cell, Touches: req.Touches})
		resp.PreventDefault = res.PreventDefault
		resp.Swapped = res.Swapped
		resp.View = sess.view(now)
		return nil
	})
	return resp, err
}

// WriteRoster renders the printable roster of the session's board.
func (s *ClassroomService) WriteRoster(id string, w io.Writer) error {
	return s.withBoard(id, func(sess *Session, _ time.Time) error {
		return sess.board.WriteRoster(w, printTitle(sess.plan.Request.ClassName))
	})
}

// Sweep closes sessions idle for longer than the session TTL.
func (s *ClassroomService) Sweep() int {
	expired := s.store.Expire(s.clock.Now().Add(-s.opts.SessionTTL))
	for _, id := range expired {
		s.logger.Info("session expired", zap.String("session_id", id))
	}
	return len(expired)
}

func (s *ClassroomService) withBoard(id string, fn func(sess *Session, now time.Time) error) error {
	sess, err := s.store.Get(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	now := s.clock.Now()
	sess.touchedAt(now)
	if sess.board == nil {
		return ErrNoLayout
	}
	return fn(sess, now)
}
