// Package net is the WebSocket transport: session bookkeeping, input
// intake, heartbeat liveness, and per-tick snapshot broadcast. All game
// rules live in the sim package; this layer only translates messages.
package net

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/peggy10039/cat-village-gaming/internal/sim"
)

const (
	writeWait         = 10 * time.Second
	heartbeatInterval = 2 * time.Second
	disconnectAfter   = 3 * heartbeatInterval
)

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

type sessionState struct {
	id            string
	lastHeartbeat time.Time
	lastRTT       time.Duration
}

// Hub fans one world's snapshots out to every connected session. The
// loop goroutine is the only one that touches the world; the hub's own
// mutex covers just the session and subscriber maps.
type Hub struct {
	loop     *sim.Loop
	world    *sim.World
	tickRate int

	mu           sync.Mutex
	sessions     map[string]*sessionState
	subscribers  map[string]*subscriber
	lastSnapshot sim.Snapshot
}

// NewHub wires a hub to a loop. Construct it before the loop starts and
// install the hub's AfterStep hook so broadcasts follow every tick; the
// loop goroutine is the only one that may touch the world afterwards.
func NewHub(world *sim.World, loop *sim.Loop, tickRate int) *Hub {
	return &Hub{
		loop:         loop,
		world:        world,
		tickRate:     tickRate,
		sessions:     make(map[string]*sessionState),
		subscribers:  make(map[string]*subscriber),
		lastSnapshot: world.Snapshot(),
	}
}

// AfterStep is the loop hook: prune dead sessions, then broadcast.
func (h *Hub) AfterStep(result sim.LoopStepResult) {
	h.mu.Lock()
	h.lastSnapshot = result.Snapshot
	h.mu.Unlock()

	for _, sub := range h.pruneStale(result.Now) {
		sub.conn.Close()
	}
	h.broadcastState(result.Snapshot)
}

// latestSnapshot is the most recent frame the loop produced. Handler
// goroutines read this instead of touching the world directly.
func (h *Hub) latestSnapshot() sim.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastSnapshot
}

// Join registers a session and returns the static world payload plus a
// current snapshot. The snapshot here may trail the loop by one tick,
// which the first broadcast corrects.
func (h *Hub) Join() joinResponse {
	id := uuid.NewString()

	h.mu.Lock()
	h.sessions[id] = &sessionState{id: id, lastHeartbeat: time.Now()}
	h.mu.Unlock()

	// Config, obstacles, and the shop point are fixed after construction,
	// so reading them off the world here is safe.
	shop := h.world.Shop()
	return joinResponse{
		ID:        id,
		Config:    h.world.Config(),
		Obstacles: h.world.Obstacles(),
		Shop:      shopView{ID: shop.ID, Name: shop.Name, X: shop.X, Y: shop.Y},
		TickRate:  h.tickRate,
		Heartbeat: heartbeatInterval.Milliseconds(),
		Snapshot:  h.latestSnapshot(),
	}
}

// Subscribe attaches a connection to a joined session, replacing any
// previous connection for the same id.
func (h *Hub) Subscribe(sessionID string, conn *websocket.Conn) (*subscriber, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	state, ok := h.sessions[sessionID]
	if !ok {
		return nil, false
	}
	state.lastHeartbeat = time.Now()

	if existing, ok := h.subscribers[sessionID]; ok {
		existing.conn.Close()
	}
	sub := &subscriber{conn: conn}
	h.subscribers[sessionID] = sub
	return sub, true
}

// Disconnect drops a session and closes its connection if one is live.
func (h *Hub) Disconnect(sessionID string) {
	h.mu.Lock()
	sub, subOK := h.subscribers[sessionID]
	delete(h.subscribers, sessionID)
	delete(h.sessions, sessionID)
	h.mu.Unlock()

	if subOK {
		sub.conn.Close()
	}
}

// UpdateHeartbeat refreshes a session's liveness window and records the
// round-trip estimate when the client clock looks sane.
func (h *Hub) UpdateHeartbeat(sessionID string, receivedAt time.Time, clientSent int64) (time.Duration, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	state, ok := h.sessions[sessionID]
	if !ok {
		return 0, false
	}
	state.lastHeartbeat = receivedAt

	if clientSent > 0 {
		clientTime := time.UnixMilli(clientSent)
		if clientTime.Before(receivedAt.Add(5 * time.Second)) {
			rtt := receivedAt.Sub(clientTime)
			if rtt < 0 {
				rtt = 0
			}
			state.lastRTT = rtt
		}
	}
	return state.lastRTT, true
}

func (h *Hub) pruneStale(now time.Time) []*subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	toClose := make([]*subscriber, 0)
	for id, state := range h.sessions {
		if now.Sub(state.lastHeartbeat) <= disconnectAfter {
			continue
		}
		if sub, ok := h.subscribers[id]; ok {
			toClose = append(toClose, sub)
			delete(h.subscribers, id)
		}
		delete(h.sessions, id)
		log.Printf("disconnecting %s due to heartbeat timeout", id)
	}
	return toClose
}

// DiagnosticsSnapshot exposes session liveness for the diagnostics
// endpoint.
func (h *Hub) DiagnosticsSnapshot() []diagnosticsSession {
	h.mu.Lock()
	defer h.mu.Unlock()

	sessions := make([]diagnosticsSession, 0, len(h.sessions))
	for _, state := range h.sessions {
		sessions = append(sessions, diagnosticsSession{
			ID:            state.id,
			LastHeartbeat: state.lastHeartbeat.UnixMilli(),
			RTTMillis:     state.lastRTT.Milliseconds(),
		})
	}
	return sessions
}

// DroppedCommands reports loop backpressure for diagnostics.
func (h *Hub) DroppedCommands() uint64 {
	return h.loop.Dropped()
}

// broadcastState sends the snapshot to every subscriber, disconnecting
// any whose write fails.
func (h *Hub) broadcastState(snapshot sim.Snapshot) {
	msg := stateMessage{Type: "state", Snapshot: snapshot, ServerTime: time.Now().UnixMilli()}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("failed to marshal state message: %v", err)
		return
	}

	h.mu.Lock()
	subs := make(map[string]*subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		subs[id] = sub
	}
	h.mu.Unlock()

	for id, sub := range subs {
		if err := sub.write(data); err != nil {
			log.Printf("failed to send update to %s: %v", id, err)
			h.Disconnect(id)
		}
	}
}

// readSession pumps one connection's messages into the loop until the
// connection drops.
func (h *Hub) readSession(ctx context.Context, sessionID string, sub *subscriber) {
	defer h.Disconnect(sessionID)

	for {
		if ctx.Err() != nil {
			return
		}
		_, payload, err := sub.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			log.Printf("discarding malformed message from %s: %v", sessionID, err)
			continue
		}

		if msg.Type == "heartbeat" {
			h.ackHeartbeat(sessionID, sub, msg.SentAt)
			continue
		}

		cmd, ok := commandFor(msg)
		if !ok {
			log.Printf("unknown message type %q from %s", msg.Type, sessionID)
			continue
		}
		if !h.loop.Enqueue(cmd) {
			log.Printf("command queue full, dropping %q from %s", msg.Type, sessionID)
		}
	}
}

func (h *Hub) ackHeartbeat(sessionID string, sub *subscriber, sentAt int64) {
	now := time.Now()
	rtt, ok := h.UpdateHeartbeat(sessionID, now, sentAt)
	if !ok {
		return
	}

	ack := heartbeatMessage{
		Type:       "heartbeat",
		ServerTime: now.UnixMilli(),
		ClientTime: sentAt,
		RTTMillis:  rtt.Milliseconds(),
	}
	data, err := json.Marshal(ack)
	if err != nil {
		log.Printf("failed to marshal heartbeat ack for %s: %v", sessionID, err)
		return
	}
	if err := sub.write(data); err != nil {
		h.Disconnect(sessionID)
	}
}
