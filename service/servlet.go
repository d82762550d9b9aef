package service

import (
	"fmt"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/model"
	"github.com/ratel-online/uno-server/uno/card/color"
)

type servlet func(e *Engine, playerID string, req model.Request) (interface{}, error)

var servlets = map[string]servlet{
	consts.ActionCreate:  create,
	consts.ActionJoin:    join,
	consts.ActionObserve: observe,
	consts.ActionReady:   ready,
	consts.ActionBuy:     buy,
	consts.ActionPut:     put,
	consts.ActionList:    list,
}

// Handle answers one client request on behalf of playerID.
func (e *Engine) Handle(playerID string, req model.Request) model.Resp {
	handler, ok := servlets[req.Action]
	if !ok {
		return model.ErrResp(req.Action, req.GameID, consts.ErrorsUnknownAction)
	}
	data, err := handler(e, playerID, req)
	if err != nil {
		return model.ErrResp(req.Action, req.GameID, err)
	}
	resp := model.SucResp(req.Action, req.GameID, data)
	if gameID, ok := data.(string); ok && req.Action == consts.ActionCreate {
		resp.GameID = gameID
	}
	return resp
}

func create(e *Engine, playerID string, req model.Request) (interface{}, error) {
	if req.GameID == "" {
		gameID, err := e.CreateGame(playerID)
		return gameID, err
	}
	return req.GameID, e.SetupGame(playerID, req.GameID)
}

func join(e *Engine, playerID string, req model.Request) (interface{}, error) {
	return nil, e.JoinGame(req.GameID, playerID)
}

func observe(e *Engine, playerID string, req model.Request) (interface{}, error) {
	return nil, e.StartObservingGame(req.GameID)
}

func ready(e *Engine, playerID string, req model.Request) (interface{}, error) {
	return nil, e.ToggleReady(playerID, req.GameID)
}

func buy(e *Engine, playerID string, req model.Request) (interface{}, error) {
	return nil, e.BuyCard(playerID, req.GameID)
}

func put(e *Engine, playerID string, req model.Request) (interface{}, error) {
	if req.CardID == "" {
		return nil, consts.ErrorsInputInvalid
	}
	if req.Color == "" {
		return nil, e.PutCard(playerID, req.CardID, req.GameID)
	}
	pickedColor, err := color.ByName(req.Color)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, consts.ErrorsInvalidColor)
	}
	return nil, e.PutCard(playerID, req.CardID, req.GameID, pickedColor)
}

func list(e *Engine, playerID string, req model.Request) (interface{}, error) {
	return e.ListGames(), nil
}
