package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("JST", 9*3600))
	c := NewFixed(at)
	assert.Equal(t, at.UTC(), c.Now())
	assert.Equal(t, c.Now(), c.Now())
}

func TestManual(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	c := NewManual(at)
	c.Advance(90 * time.Second)
	assert.Equal(t, at.Add(90*time.Second), c.Now())
}

func TestSystem(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC()
	got := NewSystem().Now()
	assert.False(t, got.Before(before.Add(-time.Second)))
	assert.Equal(t, time.UTC, got.Location())
}
