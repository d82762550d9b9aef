package model

import (
	"errors"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/event"
)

// ActionEvent marks frames pushed by a room instead of answering a request.
const ActionEvent = "event"

type Request struct {
	Action string `json:"action"`
	GameID string `json:"gameId,omitempty"`
	CardID string `json:"cardId,omitempty"`
	Color  string `json:"color,omitempty"`
}

type Resp struct {
	Action string      `json:"action"`
	Code   int         `json:"code"`
	Msg    string      `json:"msg,omitempty"`
	Kind   event.Kind  `json:"kind,omitempty"`
	GameID string      `json:"gameId,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

func SucResp(action, gameID string, data interface{}) Resp {
	return Resp{Action: action, Code: consts.CodeSuccess, GameID: gameID, Data: data}
}

func ErrResp(action, gameID string, err error) Resp {
	code := consts.ErrorsUnknownAction.Code
	var e consts.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return Resp{Action: action, Code: code, Msg: err.Error(), GameID: gameID}
}

func SucBroadcast(ev event.Event, text string) Resp {
	return Resp{
		Action: ActionEvent,
		Code:   consts.CodeEvent,
		Msg:    text,
		Kind:   ev.Kind,
		GameID: ev.GameID,
		Data:   ev.Payload,
	}
}

func (r Resp) Success() bool {
	return r.Code == consts.CodeSuccess
}
