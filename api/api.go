// Package api exposes the map runtime over a WebSocket control surface.
// Remote clients can query territories, drive the selection (including raw
// clicks resolved through the same hit test the GUI uses) and edit owner
// and army metadata.
package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"riskmap/storage"
	"riskmap/truntime"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Local tooling surface; accept any origin.
		return true
	},
}

// MessageHandler processes one incoming client message.
type MessageHandler func(c *WSClient, message WSMessage) error

// API is the WebSocket hub.
type API struct {
	state *truntime.State

	clients    map[*WSClient]bool
	broadcast  chan WSMessage
	register   chan *WSClient
	unregister chan *WSClient
	handlers   map[MessageType]MessageHandler
}

// WSClient is one connected WebSocket client.
type WSClient struct {
	conn *websocket.Conn
	send chan WSMessage
	api  *API
	id   string
}

// StartWebSocketServer runs the hub and the HTTP listener on addr. It
// blocks; callers run it in a goroutine.
func StartWebSocketServer(st *truntime.State, addr string) {
	a := NewAPI(st)
	go a.run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", a.handleWebSocket)

	log.Printf("[API] WebSocket server starting on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("[API] WebSocket server stopped: %v", err)
	}
}

// NewAPI creates a hub bound to the given runtime state.
func NewAPI(st *truntime.State) *API {
	a := &API{
		state:      st,
		clients:    make(map[*WSClient]bool),
		broadcast:  make(chan WSMessage, 256),
		register:   make(chan *WSClient),
		unregister: make(chan *WSClient),
		handlers:   make(map[MessageType]MessageHandler),
	}
	a.registerHandlers()
	return a
}

// run handles the main WebSocket hub logic.
func (a *API) run() {
	go a.listenForStateEvents()

	for {
		select {
		case client := <-a.register:
			a.clients[client] = true

			ackMsg := WSMessage{
				Type:      MessageTypeAck,
				Data:      "Connected to map runtime",
				Timestamp: time.Now(),
			}
			select {
			case client.send <- ackMsg:
			default:
				close(client.send)
				delete(a.clients, client)
			}
			log.Printf("[API] Client %s connected", client.id)

		case client := <-a.unregister:
			if _, ok := a.clients[client]; ok {
				delete(a.clients, client)
				close(client.send)
				log.Printf("[API] Client %s disconnected", client.id)
			}

		case message := <-a.broadcast:
			for client := range a.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(a.clients, client)
				}
			}
		}
	}
}

// listenForStateEvents forwards runtime state changes to all clients.
func (a *API) listenForStateEvents() {
	for ev := range a.state.Events() {
		var msg WSMessage
		switch ev.Type {
		case truntime.EventSelectionChanged:
			msg = WSMessage{
				Type:      MessageTypeSelectionChanged,
				Data:      a.selectionData(),
				Timestamp: time.Now(),
			}
		case truntime.EventTerritoryChanged, truntime.EventStateLoaded:
			msg = WSMessage{
				Type:      MessageTypeTerritoryData,
				Data:      a.mapData(),
				Timestamp: time.Now(),
			}
		default:
			continue
		}

		select {
		case a.broadcast <- msg:
		default:
			// Broadcast queue full; drop the update.
		}
	}
}

// mapData snapshots the full territory collection for the wire.
func (a *API) mapData() *MapData {
	territories := a.state.Territories()
	data := &MapData{
		MapName:     a.state.MapName(),
		Territories: make([]TerritoryData, 0, len(territories)),
	}

	selected, _ := a.state.Selection()
	for i, terr := range territories {
		verts := make([][2]float64, len(terr.Vertices))
		for j, v := range terr.Vertices {
			verts[j] = [2]float64{v.X, v.Y}
		}
		data.Territories = append(data.Territories, TerritoryData{
			Index:    i,
			Name:     terr.Name,
			Owner:    terr.Owner,
			Armies:   terr.Armies,
			Selected: i == selected,
			Vertices: verts,
		})
	}
	return data
}

func (a *API) selectionData() *SelectionData {
	idx, terr := a.state.Selection()
	if terr == nil {
		return &SelectionData{HasSelection: false, Index: truntime.NoSelection}
	}
	return &SelectionData{
		HasSelection: true,
		Index:        idx,
		Name:         terr.Name,
		Armies:       terr.Armies,
	}
}

// handleWebSocket upgrades an HTTP request and starts the client pumps.
func (a *API) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[API] WebSocket upgrade failed: %v", err)
		return
	}

	client := &WSClient{
		conn: conn,
		send: make(chan WSMessage, 256),
		api:  a,
		id:   fmt.Sprintf("%d", time.Now().UnixNano()),
	}

	a.register <- client

	go client.writePump()
	go client.readPump()
}

// writePump pumps messages from the hub to the websocket connection.
func (c *WSClient) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				log.Printf("[API] Error writing to client %s: %v", c.id, err)
				return
			}

		case <-ticker.C:
			// Keep the connection alive.
			if err := c.conn.WriteJSON(WSMessage{
				Type:      "ping",
				Timestamp: time.Now(),
			}); err != nil {
				return
			}
		}
	}
}

// readPump pumps messages from the websocket connection to the handlers.
func (c *WSClient) readPump() {
	defer func() {
		c.api.unregister <- c
		c.conn.Close()
	}()

	for {
		var message WSMessage
		if err := c.conn.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[API] WebSocket error: %v", err)
			}
			break
		}

		if message.Timestamp.IsZero() {
			message.Timestamp = time.Now()
		}

		if err := c.handleMessage(message); err != nil {
			errorMsg := WSMessage{
				Type:      MessageTypeError,
				RequestID: message.RequestID,
				Error:     err.Error(),
				Timestamp: time.Now(),
			}
			select {
			case c.send <- errorMsg:
			default:
				return
			}
		}
	}
}

func (c *WSClient) handleMessage(message WSMessage) error {
	handler, exists := c.api.handlers[message.Type]
	if !exists {
		return fmt.Errorf("unknown message type: %s", message.Type)
	}
	return handler(c, message)
}

func (c *WSClient) reply(requestID string, msgType MessageType, data interface{}) {
	msg := WSMessage{
		Type:      msgType,
		RequestID: requestID,
		Data:      data,
		Timestamp: time.Now(),
	}
	select {
	case c.send <- msg:
	default:
	}
}

// decodeData re-marshals the loosely typed Data field into a concrete
// request payload.
func decodeData(message WSMessage, out interface{}) error {
	raw, err := json.Marshal(message.Data)
	if err != nil {
		return fmt.Errorf("invalid request data: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid request data: %w", err)
	}
	return nil
}

// snapshotPath resolves a client-supplied snapshot name inside the data
// directory, refusing path traversal.
func snapshotPath(name string) (string, error) {
	if name == "" {
		name = storage.DefaultSnapshotName
	}
	if strings.Contains(name, "..") || filepath.IsAbs(name) {
		return "", fmt.Errorf("invalid snapshot name: %s", name)
	}
	return storage.DataFile(name), nil
}
