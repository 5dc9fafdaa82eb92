package stats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func TestUpdateCountsFramesPerSecond(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := newWithClock(clock.now)

	for i := 0; i < 30; i++ {
		clock.t = clock.t.Add(20 * time.Millisecond)
		s.Update()
	}
	snap := s.Snapshot()
	assert.EqualValues(t, 30, snap.Frames)
	assert.EqualValues(t, 0, snap.FPS)

	for i := 0; i < 20; i++ {
		clock.t = clock.t.Add(20 * time.Millisecond)
		s.Update()
	}
	snap = s.Snapshot()
	assert.EqualValues(t, 50, snap.Frames)
	assert.EqualValues(t, 50, snap.FPS)
	assert.InDelta(t, 1.0, snap.Uptime, 1e-9)
}

func TestSnapshotMarshals(t *testing.T) {
	s := New()
	s.SetWsClients(2)
	s.Update()

	b, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.EqualValues(t, 2, out["ws_clients"])
	assert.EqualValues(t, 1, out["frames"])
	assert.Contains(t, out, "fps")
	assert.Contains(t, out, "uptime")
}
