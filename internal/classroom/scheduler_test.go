package classroom

import (
	"context"
	"testing"
	"time"

	"SeatShuffler/internal/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestSessionSweeper_ExpiresIdleSessions(t *testing.T) {
	clk := clock.NewManual(start)
	svc := newTestService(t, clk)
	_, err := svc.OpenSession()
	require.NoError(t, err)
	_, err = svc.OpenSession()
	require.NoError(t, err)

	sweeper := NewSessionSweeper(svc, 5*time.Millisecond, nil)
	sweeper.Start()
	defer func() { require.NoError(t, sweeper.Stop(context.Background())) }()

	clk.Advance(2 * time.Hour)
	assert.Eventually(t, func() bool { return svc.store.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestSessionSweeper_Lifecycle(t *testing.T) {
	svc := newTestService(t, clock.NewFixed(start))
	sweeper := NewSessionSweeper(svc, time.Hour, nil)

	lc := fxtest.NewLifecycle(t)
	sweeper.Register(lc)
	lc.RequireStart()
	lc.RequireStop()
}

func TestSessionSweeper_StopWithoutStart(t *testing.T) {
	sweeper := NewSessionSweeper(newTestService(t, nil), 0, nil)
	assert.NoError(t, sweeper.Stop(context.Background()))
}
