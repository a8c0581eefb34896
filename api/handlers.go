package api

import (
	"riskmap/typedef"
)

// registerHandlers registers all message handlers.
func (a *API) registerHandlers() {
	a.handlers[MessageTypeGetTerritories] = a.handleGetTerritories
	a.handlers[MessageTypeGetSelection] = a.handleGetSelection
	a.handlers[MessageTypeClick] = a.handleClick
	a.handlers[MessageTypeSelectTerritory] = a.handleSelectTerritory
	a.handlers[MessageTypeDeselect] = a.handleDeselect
	a.handlers[MessageTypeSetOwner] = a.handleSetOwner
	a.handlers[MessageTypeSetArmies] = a.handleSetArmies
	a.handlers[MessageTypeSaveState] = a.handleSaveState
	a.handlers[MessageTypeLoadState] = a.handleLoadState
}

func (a *API) handleGetTerritories(c *WSClient, message WSMessage) error {
	c.reply(message.RequestID, MessageTypeTerritoryData, a.mapData())
	return nil
}

func (a *API) handleGetSelection(c *WSClient, message WSMessage) error {
	c.reply(message.RequestID, MessageTypeSelectionChanged, a.selectionData())
	return nil
}

// handleClick resolves a remote click through the same hit test and
// last-match-wins rule as a local pointer press.
func (a *API) handleClick(c *WSClient, message WSMessage) error {
	var req ClickRequest
	if err := decodeData(message, &req); err != nil {
		return err
	}

	a.state.HandleClick(typedef.Point{X: req.X, Y: req.Y})
	c.reply(message.RequestID, MessageTypeSelectionChanged, a.selectionData())
	return nil
}

func (a *API) handleSelectTerritory(c *WSClient, message WSMessage) error {
	var req SelectRequest
	if err := decodeData(message, &req); err != nil {
		return err
	}

	if err := a.state.SelectName(req.Name); err != nil {
		return err
	}
	c.reply(message.RequestID, MessageTypeSelectionChanged, a.selectionData())
	return nil
}

func (a *API) handleDeselect(c *WSClient, message WSMessage) error {
	a.state.Deselect()
	c.reply(message.RequestID, MessageTypeSelectionChanged, a.selectionData())
	return nil
}

func (a *API) handleSetOwner(c *WSClient, message WSMessage) error {
	var req SetOwnerRequest
	if err := decodeData(message, &req); err != nil {
		return err
	}

	if err := a.state.SetOwner(req.Name, req.Owner); err != nil {
		return err
	}
	c.reply(message.RequestID, MessageTypeAck, "owner updated")
	return nil
}

func (a *API) handleSetArmies(c *WSClient, message WSMessage) error {
	var req SetArmiesRequest
	if err := decodeData(message, &req); err != nil {
		return err
	}

	if err := a.state.SetArmies(req.Name, req.Armies); err != nil {
		return err
	}
	c.reply(message.RequestID, MessageTypeAck, "armies updated")
	return nil
}

func (a *API) handleSaveState(c *WSClient, message WSMessage) error {
	var req StateFileRequest
	if err := decodeData(message, &req); err != nil {
		return err
	}

	path, err := snapshotPath(req.File)
	if err != nil {
		return err
	}
	if err := a.state.SaveSnapshot(path); err != nil {
		return err
	}
	c.reply(message.RequestID, MessageTypeAck, "state saved")
	return nil
}

func (a *API) handleLoadState(c *WSClient, message WSMessage) error {
	var req StateFileRequest
	if err := decodeData(message, &req); err != nil {
		return err
	}

	path, err := snapshotPath(req.File)
	if err != nil {
		return err
	}
	if err := a.state.LoadSnapshot(path); err != nil {
		return err
	}
	c.reply(message.RequestID, MessageTypeAck, "state loaded")
	return nil
}
