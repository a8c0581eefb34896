package api

import "time"

// WebSocket message types
type MessageType string

const (
	// Outgoing message types (server to client)
	MessageTypeTerritoryData    MessageType = "territory_data"
	MessageTypeSelectionChanged MessageType = "selection_changed"
	MessageTypeError            MessageType = "error"
	MessageTypeAck              MessageType = "ack"

	// Incoming message types (client to server)
	MessageTypeGetTerritories  MessageType = "get_territories"
	MessageTypeGetSelection    MessageType = "get_selection"
	MessageTypeClick           MessageType = "click"
	MessageTypeSelectTerritory MessageType = "select_territory"
	MessageTypeDeselect        MessageType = "deselect"
	MessageTypeSetOwner        MessageType = "set_owner"
	MessageTypeSetArmies       MessageType = "set_armies"
	MessageTypeSaveState       MessageType = "save_state"
	MessageTypeLoadState       MessageType = "load_state"
)

// WSMessage is the envelope for every message in both directions.
type WSMessage struct {
	Type      MessageType `json:"type"`
	RequestID string      `json:"request_id,omitempty"` // For correlating responses
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// TerritoryData is the wire form of one territory. Selected is derived
// from the runtime's selection index at serialization time.
type TerritoryData struct {
	Index    int          `json:"index"`
	Name     string       `json:"name"`
	Owner    int          `json:"owner"`
	Armies   int          `json:"armies"`
	Selected bool         `json:"selected"`
	Vertices [][2]float64 `json:"vertices"`
}

// MapData is the payload for territory_data responses.
type MapData struct {
	MapName     string          `json:"map_name"`
	Territories []TerritoryData `json:"territories"`
}

// SelectionData is the payload for selection queries and broadcasts.
type SelectionData struct {
	HasSelection bool   `json:"has_selection"`
	Index        int    `json:"index"`
	Name         string `json:"name,omitempty"`
	Armies       int    `json:"armies,omitempty"`
}

// Incoming payloads

type ClickRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SelectRequest struct {
	Name string `json:"name"`
}

type SetOwnerRequest struct {
	Name  string `json:"name"`
	Owner int    `json:"owner"`
}

type SetArmiesRequest struct {
	Name   string `json:"name"`
	Armies int    `json:"armies"`
}

type StateFileRequest struct {
	// File is resolved relative to the data directory; empty uses the
	// default snapshot name.
	File string `json:"file,omitempty"`
}
