package render

import (
	"testing"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/database"
	"github.com/ratel-online/uno-server/uno/event"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/stretchr/testify/require"
)

func TestEvent(t *testing.T) {
	players := database.NewPlayers()
	players.Register("1", "alice")
	g := game.New("g1", "alice", 4, game.Pile{}, game.NewPlayer("1", "alice"))

	cases := []struct {
		name string
		ev   event.Event
		text string
	}{
		{name: "won", ev: event.Event{GameID: "g1", Kind: event.PlayerWon, Payload: "1"}, text: "alice wins!\n"},
		{name: "uno_unknown_player", ev: event.Event{GameID: "g1", Kind: event.PlayerUno, Payload: "9"}, text: "9 has one card left, UNO!\n"},
		{name: "ended", ev: event.Event{GameID: "g1", Kind: event.GameEnded}, text: "Game over!\n"},
		{name: "created", ev: event.Event{GameID: "g1", Kind: event.GameCreated, Payload: g}, text: "alice created room g1\n"},
		{name: "joined", ev: event.Event{GameID: "g1", Kind: event.PlayerJoined, Payload: g}, text: "Room g1 now has 1/4 players\n"},
		{name: "started", ev: event.Event{GameID: "g1", Kind: event.GameStarted, Payload: g}, text: "Game started with 1 players, alice goes first!\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.text, Event(players, c.ev))
		})
	}
}

func TestRoomList(t *testing.T) {
	g := game.New("g1", "alice", 4, game.Pile{}, game.NewPlayer("1", "alice"))
	list := RoomList([]*game.Game{g})
	require.Contains(t, list, "g1")
	require.Contains(t, list, "1/4")
	require.Contains(t, list, "waiting")
}

func TestWelcome(t *testing.T) {
	resp := Welcome(database.PlayerData{ID: "1", Name: "alice"})
	require.Equal(t, consts.CodeSuccess, resp.Code)
	require.Contains(t, resp.Msg, "alice")
}
