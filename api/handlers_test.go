package api

import (
	"testing"

	"riskmap/truntime"
	"riskmap/typedef"
)

func newTestAPI() (*API, *WSClient) {
	st := truntime.New("test", []*typedef.Territory{
		{
			Name:     "Alpha",
			Vertices: []typedef.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
			Owner:    0,
			Armies:   5,
		},
		{
			Name:     "Beta",
			Vertices: []typedef.Point{{X: 20, Y: 20}, {X: 30, Y: 20}, {X: 30, Y: 30}, {X: 20, Y: 30}},
			Owner:    1,
			Armies:   3,
		},
	})
	a := NewAPI(st)
	client := &WSClient{send: make(chan WSMessage, 8), api: a, id: "test"}
	return a, client
}

func drainReply(t *testing.T, c *WSClient) WSMessage {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	default:
		t.Fatal("Expected a reply message")
		return WSMessage{}
	}
}

func TestHandleClick_SelectsAndReplies(t *testing.T) {
	a, c := newTestAPI()

	msg := WSMessage{Type: MessageTypeClick, RequestID: "1", Data: map[string]interface{}{"x": 25.0, "y": 25.0}}
	if err := a.handleClick(c, msg); err != nil {
		t.Fatalf("handleClick failed: %v", err)
	}

	reply := drainReply(t, c)
	if reply.Type != MessageTypeSelectionChanged || reply.RequestID != "1" {
		t.Errorf("Unexpected reply %+v", reply)
	}
	sel := reply.Data.(*SelectionData)
	if !sel.HasSelection || sel.Name != "Beta" || sel.Index != 1 {
		t.Errorf("Expected Beta selected, got %+v", sel)
	}
}

func TestHandleClick_EmptySpace(t *testing.T) {
	a, c := newTestAPI()
	a.state.HandleClick(typedef.Point{X: 5, Y: 5})

	msg := WSMessage{Type: MessageTypeClick, Data: map[string]interface{}{"x": 500.0, "y": 500.0}}
	if err := a.handleClick(c, msg); err != nil {
		t.Fatalf("handleClick failed: %v", err)
	}

	sel := drainReply(t, c).Data.(*SelectionData)
	if sel.HasSelection {
		t.Errorf("Expected no selection, got %+v", sel)
	}
}

func TestHandleSelectTerritory_UnknownName(t *testing.T) {
	a, c := newTestAPI()

	msg := WSMessage{Type: MessageTypeSelectTerritory, Data: map[string]interface{}{"name": "Atlantis"}}
	if err := a.handleSelectTerritory(c, msg); err == nil {
		t.Error("Expected error for unknown territory")
	}
}

func TestHandleGetTerritories_DerivesSelectedFlag(t *testing.T) {
	a, c := newTestAPI()
	if err := a.state.SelectName("Alpha"); err != nil {
		t.Fatal(err)
	}

	if err := a.handleGetTerritories(c, WSMessage{Type: MessageTypeGetTerritories}); err != nil {
		t.Fatalf("handleGetTerritories failed: %v", err)
	}

	data := drainReply(t, c).Data.(*MapData)
	if len(data.Territories) != 2 {
		t.Fatalf("Expected 2 territories, got %d", len(data.Territories))
	}
	if !data.Territories[0].Selected || data.Territories[1].Selected {
		t.Error("Selected flag must mirror the runtime selection index")
	}
}

func TestHandleSetOwnerAndArmies(t *testing.T) {
	a, c := newTestAPI()

	if err := a.handleSetOwner(c, WSMessage{Data: map[string]interface{}{"name": "Alpha", "owner": 2.0}}); err != nil {
		t.Fatalf("handleSetOwner failed: %v", err)
	}
	drainReply(t, c)
	if err := a.handleSetArmies(c, WSMessage{Data: map[string]interface{}{"name": "Alpha", "armies": 9.0}}); err != nil {
		t.Fatalf("handleSetArmies failed: %v", err)
	}
	drainReply(t, c)

	terr := a.state.Territories()[0]
	if terr.Owner != 2 || terr.Armies != 9 {
		t.Errorf("Expected owner 2 / armies 9, got %d / %d", terr.Owner, terr.Armies)
	}
}

func TestSnapshotPath_RejectsTraversal(t *testing.T) {
	if _, err := snapshotPath("../evil.lz4"); err == nil {
		t.Error("Expected error for path traversal")
	}
	if _, err := snapshotPath("/tmp/evil.lz4"); err == nil {
		t.Error("Expected error for absolute path")
	}
	if _, err := snapshotPath(""); err != nil {
		t.Errorf("Expected default snapshot name to resolve, got %v", err)
	}
}
