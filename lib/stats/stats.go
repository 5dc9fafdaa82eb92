package stats

import (
	"sync"
	"time"
)

// Stats is written by the render loop and read by the API.
type Stats struct {
	Frames    uint64  `json:"frames"`
	Uptime    float64 `json:"uptime"`
	FPS       uint64  `json:"fps"`
	WsClients int     `json:"ws_clients"`

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
	now          func() time.Time

	mu sync.Mutex
}

func New() *Stats {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Stats {
	s := &Stats{now: now}
	s.start = now()
	s.frameTimer = s.start
	return s
}

// Update is called once per presented frame.
func (s *Stats) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.Frames++
	s.frameCounter++
	if now.Sub(s.frameTimer) >= 1*time.Second {
		s.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = now
	}

	s.Uptime = float64(now.Sub(s.start).Nanoseconds()) / 1e9
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.WsClients = n
}

// Snapshot is a copy that is safe to marshal from another goroutine.
func (s *Stats) Snapshot() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Frames:    s.Frames,
		Uptime:    s.Uptime,
		FPS:       s.FPS,
		WsClients: s.WsClients,
	}
}
