package view

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// statusMessage is the JSON frame broadcast to websocket clients each tick.
type statusMessage struct {
	Step          int      `json:"step"`
	CycleProgress float64  `json:"cycle_progress"`
	CycleLength   int      `json:"cycle_length"`
	Grid          Snapshot `json:"grid"`
}

// WebSocketView broadcasts per-tick snapshots to connected clients as JSON.
// Slow or broken clients are dropped rather than back-pressuring the
// simulation.
type WebSocketView struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	server  *http.Server
}

// NewWebSocketView creates a broadcaster listening on addr (e.g. ":8700").
// The websocket endpoint is /ws.
func NewWebSocketView(addr string) *WebSocketView {
	v := &WebSocketView{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
		clients: make(map[*websocket.Conn]struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", v.handleWS)
	v.server = &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := v.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("status websocket server stopped", "error", err)
		}
	}()

	return v
}

func (v *WebSocketView) handleWS(rw http.ResponseWriter, r *http.Request) {
	conn, err := v.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		return
	}

	v.mu.Lock()
	v.clients[conn] = struct{}{}
	v.mu.Unlock()

	// Reader loop: clients send nothing meaningful; detect disconnects.
	go func() {
		defer v.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (v *WebSocketView) drop(conn *websocket.Conn) {
	v.mu.Lock()
	delete(v.clients, conn)
	v.mu.Unlock()
	conn.Close()
}

// ShowStatus implements View.
func (v *WebSocketView) ShowStatus(step int, snap Snapshot, cycleProgress float64, cycleLength int) {
	v.mu.Lock()
	if len(v.clients) == 0 {
		v.mu.Unlock()
		return
	}
	conns := make([]*websocket.Conn, 0, len(v.clients))
	for conn := range v.clients {
		conns = append(conns, conn)
	}
	v.mu.Unlock()

	payload, err := json.Marshal(statusMessage{
		Step:          step,
		CycleProgress: cycleProgress,
		CycleLength:   cycleLength,
		Grid:          snap,
	})
	if err != nil {
		slog.Error("marshaling status message", "error", err)
		return
	}

	for _, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			v.drop(conn)
		}
	}
}

// Close shuts down the server and disconnects all clients.
func (v *WebSocketView) Close() error {
	v.mu.Lock()
	for conn := range v.clients {
		conn.Close()
	}
	v.clients = make(map[*websocket.Conn]struct{})
	v.mu.Unlock()
	return v.server.Close()
}
