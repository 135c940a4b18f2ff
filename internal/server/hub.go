// Package server drives the simulation tick loop and exposes a
// websocket telemetry hub: per-tick world and body snapshots go out,
// per-body input velocities come in.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"voxphys/internal/geom"
	"voxphys/internal/world"
)

// BodySnapshot is one body's state in a tick broadcast.
type BodySnapshot struct {
	BodyID   string  `json:"bodyId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	VelX     float64 `json:"velX"`
	VelY     float64 `json:"velY"`
	VelZ     float64 `json:"velZ"`
	Grounded bool    `json:"grounded"`
}

// WorldSnapshot is the payload broadcast after every committed tick.
type WorldSnapshot struct {
	WorldID   string         `json:"worldId"`
	TotalTime float64        `json:"totalTime"`
	Health    string         `json:"health"`
	Bodies    []BodySnapshot `json:"bodies"`
}

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type inputPayload struct {
	BodyID string  `json:"bodyId"`
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
}

type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *client) send(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(v)
}

// Hub tracks connected clients and the latest input velocity requested
// for each body. A single mutex guards both; snapshots are cloned on
// read.
type Hub struct {
	mu       sync.Mutex
	clients  map[*client]struct{}
	inputs   map[world.BodyID]geom.Vector3
	upgrader websocket.Upgrader
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		inputs:  make(map[world.BodyID]geom.Vector3),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle upgrades an HTTP request and runs the client's read loop.
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	c := &client{conn: conn}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			return
		}
		if env.Type != "input" {
			continue
		}
		var in inputPayload
		if err := json.Unmarshal(env.Payload, &in); err != nil {
			continue
		}
		h.mu.Lock()
		// Input is horizontal intent only; vertical motion belongs to
		// gravity and collisions.
		h.inputs[world.BodyID(in.BodyID)] = geom.Vector3{X: in.X, Z: in.Z}
		h.mu.Unlock()
	}
}

// Input returns the latest requested input velocity for a body.
func (h *Hub) Input(id world.BodyID) geom.Vector3 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.inputs[id]
}

// Broadcast sends a snapshot to every connected client, dropping
// clients whose writes fail.
func (h *Hub) Broadcast(snap WorldSnapshot) {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	msg := struct {
		Type    string        `json:"type"`
		Payload WorldSnapshot `json:"payload"`
	}{Type: "snapshot", Payload: snap}

	for _, c := range clients {
		if err := c.send(msg); err != nil {
			h.mu.Lock()
			delete(h.clients, c)
			h.mu.Unlock()
			_ = c.conn.Close()
		}
	}
}
