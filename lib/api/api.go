package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/fosdem/glshapes/lib/config"
	"github.com/fosdem/glshapes/lib/metrics"
	"github.com/fosdem/glshapes/lib/stats"
	"github.com/gorilla/websocket"
)

// Shutdowner is told to stop rendering. It must be safe to call from
// any goroutine.
type Shutdowner interface {
	RequestShutdown()
}

type Api struct {
	srv    http.Server
	mux    *http.ServeMux
	cfg    *config.ApiCfg
	target Shutdowner

	Stats *stats.Stats

	wsClients map[*websocket.Conn]bool
	wsMutex   sync.Mutex
}

func New(cfg *config.ApiCfg, target Shutdowner, s *stats.Stats) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.target = target
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*websocket.Conn]bool)
	a.Stats = s

	a.mux.HandleFunc("/api/kill", a.kill)
	a.mux.HandleFunc("/api/stats", a.getStats)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	if cfg.Metrics {
		a.mux.Handle("/metrics", metrics.Handler())
	}
	return a
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	return a.srv.ListenAndServe()
}

func (a *Api) kill(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, "Invalid method, only POST supported", http.StatusMethodNotAllowed)
		return
	}
	a.log("shutting down as per api request")
	a.target.RequestShutdown()
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		a.log("could not write response: %s", err)
		return
	}
}

func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.Stats.Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

func (a *Api) log(msg string, args ...interface{}) {
	slog.Info(fmt.Sprintf(msg, args...), slog.String("module", "api"))
}

func ServeInBackground(cfg *config.ApiCfg, target Shutdowner, s *stats.Stats) *Api {
	var theApi *Api
	if cfg != nil {
		theApi = New(cfg, target, s)

		theApi.log("starting web server on %s", cfg.Bind)
		go func() {
			err := theApi.Serve()
			if err != nil && err != http.ErrServerClosed {
				slog.Error(fmt.Sprintf("web server stopped: %s", err), slog.String("module", "api"))
			}
		}()
	}
	return theApi
}
