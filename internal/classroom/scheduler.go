package classroom

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// SessionSweeper periodically closes idle sessions.
type SessionSweeper struct {
	service  *ClassroomService
	interval time.Duration
	logger   *zap.Logger

	done    chan struct{}
	stopped chan struct{}
}

func NewSessionSweeper(service *ClassroomService, interval time.Duration, logger *zap.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionSweeper{service: service, interval: interval, logger: logger}
}

// Start launches the sweep loop. It must be paired with Stop.
func (s *SessionSweeper) Start() {
	s.done = make(chan struct{})
	s.stopped = make(chan struct{})
	ticker := time.NewTicker(s.interval)

	s.logger.Info("starting session sweeper", zap.Duration("interval", s.interval))
	go func() {
		defer close(s.stopped)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := s.service.Sweep(); n > 0 {
					s.logger.Debug("swept idle sessions", zap.Int("count", n))
				}
			case <-s.done:
				return
			}
		}
	}()
}

// Stop ends the sweep loop and waits for it to exit or ctx to expire.
func (s *SessionSweeper) Stop(ctx context.Context) error {
	if s.done == nil {
		return nil
	}
	s.logger.Info("stopping session sweeper")
	close(s.done)
	select {
	case <-s.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Register ties the sweeper to the application lifecycle.
func (s *SessionSweeper) Register(lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
}
