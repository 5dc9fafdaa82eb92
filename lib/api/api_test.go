package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fosdem/glshapes/lib/config"
	"github.com/fosdem/glshapes/lib/stats"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	shutdown atomic.Bool
}

func (f *fakeTarget) RequestShutdown() {
	f.shutdown.Store(true)
}

func newServer(t *testing.T, cfg *config.ApiCfg) (*httptest.Server, *fakeTarget, *stats.Stats) {
	t.Helper()
	target := &fakeTarget{}
	s := stats.New()
	a := New(cfg, target, s)
	srv := httptest.NewServer(a.Handler())
	t.Cleanup(srv.Close)
	return srv, target, s
}

func TestStats(t *testing.T) {
	srv, _, s := newServer(t, &config.ApiCfg{Bind: "unused"})
	s.Update()
	s.Update()

	resp, err := http.Get(srv.URL + "/api/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got stats.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.EqualValues(t, 2, got.Frames)
}

func TestKill(t *testing.T) {
	srv, target, _ := newServer(t, &config.ApiCfg{Bind: "unused"})

	resp, err := http.Get(srv.URL + "/api/kill")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.False(t, target.shutdown.Load())

	resp, err = http.Post(srv.URL+"/api/kill", "application/json", nil)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "\"ok\"\n", string(body))
	assert.True(t, target.shutdown.Load())
}

func TestMetricsOnlyWhenEnabled(t *testing.T) {
	srv, _, _ := newServer(t, &config.ApiCfg{Bind: "unused"})
	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	srv, _, _ = newServer(t, &config.ApiCfg{Bind: "unused", Metrics: true})
	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "glshapes_frames_drawn_total")
}

func TestWebsocketPushesStats(t *testing.T) {
	srv, _, s := newServer(t, &config.ApiCfg{Bind: "unused"})
	s.Update()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, msg, err := ws.ReadMessage()
	require.NoError(t, err)

	var got stats.Stats
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.EqualValues(t, 1, got.Frames)

	assert.Eventually(t, func() bool {
		return s.Snapshot().WsClients == 1
	}, time.Second, 10*time.Millisecond)
}
