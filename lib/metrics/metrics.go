package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesDrawn = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glshapes_frames_drawn_total",
		Help: "Total number of frames drawn and presented",
	})
	DrawCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glshapes_draw_calls_total",
		Help: "Total number of indexed draw calls issued, per shape",
	}, []string{"shape"})
	ShaderErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glshapes_shader_errors_total",
		Help: "Total number of shader compile or program link failures, per stage",
	}, []string{"stage"})
)

// ShapeMetrics are the counters for a single shape.
type ShapeMetrics struct {
	DrawCalls prometheus.Counter
}

func NewShapeMetrics(name string) ShapeMetrics {
	s := ShapeMetrics{
		DrawCalls: DrawCalls.WithLabelValues(name),
	}
	s.DrawCalls.Add(0)
	return s
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
