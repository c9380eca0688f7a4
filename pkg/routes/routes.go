package pkg

import (
	"context"
	"errors"
	"net/http"

	"SeatShuffler/internal/auth"
	"SeatShuffler/internal/classroom"
	"SeatShuffler/internal/clock"
	"SeatShuffler/internal/config"
	"SeatShuffler/internal/seating"
	"SeatShuffler/pkg/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// EchoModules wires the HTTP server. The caller supplies *config.Config and
// *zap.Logger.
var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(clock.NewSystem),
	fx.Provide(NewSeatingService),
	fx.Provide(NewClassroomService),
	fx.Provide(NewTokenIssuer),
	fx.Provide(NewAuthService),
	fx.Provide(auth.NewAuthHandler),
	fx.Provide(NewClassroomHandler),
	fx.Provide(middleware.NewEnforcer),
	fx.Provide(NewSessionSweeper),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(func(s *classroom.SessionSweeper, lc fx.Lifecycle) { s.Register(lc) }),
)

func NewSeatingService(logger *zap.Logger) *seating.SeatingService {
	return seating.NewSeatingService(nil, logger.Named("seating"))
}

func NewClassroomService(cfg *config.Config, seatingService *seating.SeatingService, clk clock.Clock, logger *zap.Logger) *classroom.ClassroomService {
	return classroom.NewClassroomService(
		classroom.NewStore(cfg.MaxSessions),
		seatingService,
		clk,
		classroom.Options{
			SwapCue:    cfg.SwapCue,
			Geometry:   cfg.Geometry,
			SessionTTL: cfg.SessionTTL,
		},
		logger.Named("classroom"),
	)
}

func NewTokenIssuer(cfg *config.Config, clk clock.Clock) (*auth.TokenIssuer, error) {
	return auth.NewTokenIssuer([]byte(cfg.JWTKey), cfg.TokenTTL, clk)
}

func NewAuthService(sessions *classroom.ClassroomService, tokens *auth.TokenIssuer, logger *zap.Logger) *auth.AuthService {
	return auth.NewAuthService(sessions, tokens, logger.Named("auth"))
}

func NewClassroomHandler(service *classroom.ClassroomService, logger *zap.Logger) *classroom.ClassroomHandler {
	return classroom.NewClassroomHandler(service, logger.Named("http"))
}

func NewSessionSweeper(cfg *config.Config, service *classroom.ClassroomService, logger *zap.Logger) *classroom.SessionSweeper {
	return classroom.NewSessionSweeper(service, cfg.SweepInterval, logger.Named("sweeper"))
}

func NewEchoServer(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger, shutdowner fx.Shutdowner) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.SetupMiddleware(e, cfg.CORSOrigins, logger.Named("http"))

	addr := cfg.Addr()
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("server listening", zap.String("addr", addr))
			go func() {
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down the server")
			return e.Shutdown(ctx)
		},
	})
	return e
}

// RouteDeps groups what RegisterRoutes needs.
type RouteDeps struct {
	fx.In

	Config           *config.Config
	Logger           *zap.Logger
	Tokens           *auth.TokenIssuer
	Enforcer         *casbin.Enforcer
	AuthHandler      *auth.AuthHandler
	ClassroomHandler *classroom.ClassroomHandler
}

func RegisterRoutes(e *echo.Echo, d RouteDeps) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/sessions", d.AuthHandler.OpenSession)

	protected := e.Group("/api")
	protected.Use(middleware.JWTMiddleware(d.Tokens))
	protected.Use(middleware.CasbinMiddleware(d.Enforcer, d.Logger.Named("rbac")))

	protected.GET("/session", d.AuthHandler.Session)
	protected.DELETE("/session", d.ClassroomHandler.Close)

	protected.POST("/layout/balance", d.ClassroomHandler.Balance)
	protected.POST("/layout", d.ClassroomHandler.Generate)
	protected.GET("/layout", d.ClassroomHandler.Layout)
	protected.GET("/layout/roster", d.ClassroomHandler.Roster)

	gestures := protected.Group("/gestures", middleware.GestureRateLimiter(d.Config.GestureRate, d.Config.GestureBurst))
	gestures.POST("/drag", d.ClassroomHandler.Drag)
	gestures.POST("/touch", d.ClassroomHandler.Touch)
}
