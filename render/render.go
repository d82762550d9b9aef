package render

import (
	"bytes"
	"fmt"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/database"
	"github.com/ratel-online/uno-server/model"
	"github.com/ratel-online/uno-server/uno/event"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/ratel-online/uno-server/uno/msg"
)

const ActionWelcome = "welcome"

func Welcome(player database.PlayerData) model.Resp {
	return model.Resp{
		Action: ActionWelcome,
		Code:   consts.CodeSuccess,
		Msg:    msg.Message.Welcome(player.Name),
		Data:   player,
	}
}

func RoomList(games []*game.Game) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-38s%-20s%-10s%-10s\n", "ID", "Title", "Players", "State"))
	for _, g := range games {
		buf.WriteString(fmt.Sprintf("%-38s%-20s%-10s%-10s\n", g.ID, g.Title, fmt.Sprintf("%d/%d", len(g.Players), g.MaxPlayers), g.Status))
	}
	return buf.String()
}

// Event describes ev for people reading a terminal.
func Event(players *database.Players, ev event.Event) string {
	switch ev.Kind {
	case event.PlayerWon:
		return msg.Message.WinnerFound(name(players, ev.Payload))
	case event.PlayerUno:
		return msg.Message.PlayerUno(name(players, ev.Payload))
	case event.GameEnded:
		return msg.Sprintfln("Game over!")
	case event.PlayerJoinFailed:
		return msg.Sprintfln("A player failed to join room %s", ev.GameID)
	}

	g, ok := ev.Payload.(*game.Game)
	if !ok {
		return msg.Sprintfln("%s", ev.Kind)
	}
	switch ev.Kind {
	case event.GameCreated:
		return msg.Sprintfln("%s created room %s", g.Title, g.ID)
	case event.GameStarted:
		return msg.Message.GameStarted(g.CurrentPlayer().Name, len(g.Players))
	case event.PlayerJoined:
		return msg.Sprintfln("Room %s now has %d/%d players", g.ID, len(g.Players), g.MaxPlayers)
	case event.StartedObservingGame:
		return msg.Sprintfln("Someone is watching room %s", g.ID)
	default:
		return msg.Sprintfln("%s", g)
	}
}

func name(players *database.Players, payload interface{}) string {
	playerID, _ := payload.(string)
	if data, err := players.GetPlayerData(playerID); err == nil {
		return data.Name
	}
	return playerID
}
