package consts

import (
	"time"
)

const (
	MinPlayers = 1
	MaxPlayers = 4
	HandSize   = 7

	AuthTimeout = 3 * time.Second
	// PlayTimeout is zero when rounds are not timed.
	PlayTimeout = 0 * time.Second
)

// Request actions understood by the transport.
const (
	ActionCreate  = "create"
	ActionJoin    = "join"
	ActionObserve = "observe"
	ActionReady   = "ready"
	ActionBuy     = "buy"
	ActionPut     = "put"
	ActionList    = "list"
)

const (
	CodeSuccess = 0
	CodeEvent   = 100
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist                  = NewErr(1, true, "Exist. ")
	ErrorsChanClosed             = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout                = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid           = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail               = NewErr(1, true, "Auth fail. ")
	ErrorsUnknownAction          = NewErr(1, false, "Unknown action. ")
	ErrorsGameNotFound           = NewErr(2, false, "Game not found. ")
	ErrorsGameExists             = NewErr(2, false, "Game already exists. ")
	ErrorsPlayerNotFound         = NewErr(2, false, "Player not found. ")
	ErrorsRoomPlayersIsFull      = NewErr(3, false, "Room players is full. ")
	ErrorsJoinFailForRoomRunning = NewErr(4, false, "Join fail, room is running. ")
	ErrorsPlayerAlreadyJoined    = NewErr(4, false, "Player already joined. ")
	ErrorsGameNotPlaying         = NewErr(4, false, "Game is not playing. ")
	ErrorsGameEnded              = NewErr(4, false, "Game ended. ")
	ErrorsGameStarted            = NewErr(4, false, "Game already started. ")
	ErrorsNotYourTurn            = NewErr(4, false, "It's not your turn. ")
	ErrorsCardNotInHand          = NewErr(4, false, "Card is not in hand. ")
	ErrorsCardNotPlayable        = NewErr(4, false, "Card can not be played now. ")
	ErrorsInvalidColor           = NewErr(4, false, "Invalid color. ")
)
