package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

// statsInterval is how often stats are pushed to websocket clients.
var statsInterval = 2 * time.Second

func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		// Upgrade has already replied
		a.log("couldn't make websocket: %s", err)
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			a.log("could not close websocket: %s", err)
		}
	}(ws)
	a.addClient(ws)
	defer a.removeClient(ws)

	go a.websocketWriter(ws)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			break
		}
		a.log("Received: %s", msg)
	}
}

func (a *Api) addClient(ws *websocket.Conn) {
	a.wsMutex.Lock()
	defer a.wsMutex.Unlock()
	a.wsClients[ws] = true
	a.Stats.SetWsClients(len(a.wsClients))
}

func (a *Api) removeClient(ws *websocket.Conn) {
	a.wsMutex.Lock()
	defer a.wsMutex.Unlock()
	delete(a.wsClients, ws)
	a.Stats.SetWsClients(len(a.wsClients))
}

func (a *Api) websocketWriter(ws *websocket.Conn) {
	ticker := time.NewTicker(statsInterval)
	defer func() {
		ticker.Stop()
		_ = ws.Close()
	}()
	timeout := 10 * time.Second

	send := func() error {
		packet, err := json.Marshal(a.Stats.Snapshot())
		if err != nil {
			return fmt.Errorf("could not marshal stats: %w", err)
		}
		err = ws.SetWriteDeadline(time.Now().Add(timeout))
		if err != nil {
			return fmt.Errorf("could not set write deadline: %w", err)
		}
		return ws.WriteMessage(websocket.TextMessage, packet)
	}

	if err := send(); err != nil {
		return
	}
	for range ticker.C {
		if err := send(); err != nil {
			return
		}
	}
}
