package net

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Routes registers the hub's HTTP surface on the given mux.
func (h *Hub) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", h.handleHealth)
	mux.HandleFunc("/diagnostics", h.handleDiagnostics)
	mux.HandleFunc("/join", h.handleJoin)
	mux.HandleFunc("/ws", h.handleWS)
}

func (h *Hub) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

func (h *Hub) handleDiagnostics(w http.ResponseWriter, _ *http.Request) {
	payload := struct {
		Status          string               `json:"status"`
		ServerTime      int64                `json:"serverTime"`
		Tick            uint64               `json:"tick"`
		Sessions        []diagnosticsSession `json:"sessions"`
		TickRate        int                  `json:"tickRate"`
		Heartbeat       int64                `json:"heartbeatMillis"`
		DroppedCommands uint64               `json:"droppedCommands"`
	}{
		Status:          "ok",
		ServerTime:      time.Now().UnixMilli(),
		Tick:            h.latestSnapshot().Tick,
		Sessions:        h.DiagnosticsSnapshot(),
		TickRate:        h.tickRate,
		Heartbeat:       heartbeatInterval.Milliseconds(),
		DroppedCommands: h.DroppedCommands(),
	}
	writeJSON(w, payload)
}

func (h *Hub) handleJoin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, h.Join())
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(*http.Request) bool {
		return true
	},
}

func (h *Hub) handleWS(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("id")
	if sessionID == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade failed for %s: %v", sessionID, err)
		return
	}

	sub, ok := h.Subscribe(sessionID, conn)
	if !ok {
		message := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "unknown session")
		conn.WriteMessage(websocket.CloseMessage, message)
		conn.Close()
		return
	}

	// Send the current frame immediately so the client can render before
	// the next tick's broadcast arrives.
	initial := stateMessage{Type: "state", Snapshot: h.latestSnapshot(), ServerTime: time.Now().UnixMilli()}
	data, err := json.Marshal(initial)
	if err != nil {
		log.Printf("failed to marshal initial state for %s: %v", sessionID, err)
		h.Disconnect(sessionID)
		return
	}
	if err := sub.write(data); err != nil {
		h.Disconnect(sessionID)
		return
	}

	h.readSession(r.Context(), sessionID, sub)
}

func writeJSON(w http.ResponseWriter, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "failed to encode", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
