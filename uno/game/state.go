package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

type Status string

const (
	StatusWaiting Status = "waiting"
	StatusPlaying Status = "playing"
	StatusEnded   Status = "ended"
)

type PlayerStatus string

const (
	PlayerOnline  PlayerStatus = "online"
	PlayerOffline PlayerStatus = "offline"
)

// Outcome is what a player's hand size means at the end of their turn.
type Outcome string

const (
	OutcomeNone   Outcome = ""
	OutcomeUno    Outcome = "uno"
	OutcomeWinner Outcome = "winner"
)

type Player struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	HandCards            []card.Card  `json:"handCards"`
	UsedCards            []string     `json:"usedCards"`
	Status               PlayerStatus `json:"status"`
	Ready                bool         `json:"ready"`
	IsCurrentRoundPlayer bool         `json:"isCurrentRoundPlayer"`
	CanBuyCard           bool         `json:"canBuyCard"`
}

func NewPlayer(id, name string) Player {
	return Player{
		ID:        id,
		Name:      name,
		HandCards: []card.Card{},
		UsedCards: []string{},
		Status:    PlayerOnline,
	}
}

func (p Player) Outcome() Outcome {
	switch len(p.HandCards) {
	case 0:
		return OutcomeWinner
	case 1:
		return OutcomeUno
	default:
		return OutcomeNone
	}
}

func (p Player) Clone() Player {
	player := p
	player.HandCards = append([]card.Card{}, p.HandCards...)
	player.UsedCards = append([]string{}, p.UsedCards...)
	return player
}

type Game struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Status             Status    `json:"status"`
	MaxPlayers         int       `json:"maxPlayers"`
	Round              int       `json:"round"`
	Direction          Direction `json:"direction"`
	CurrentPlayerIndex int       `json:"currentPlayerIndex"`
	// NextPlayerIndex is staged by the previous turn and by card effects, and
	// consumed (wrapped) when the turn advances.
	NextPlayerIndex  int         `json:"nextPlayerIndex"`
	CurrentGameColor color.Color `json:"currentGameColor"`
	Players          []Player    `json:"players"`
	AvailableCards   Pile        `json:"availableCards"`
	UsedCards        Pile        `json:"usedCards"`
	Cards            Pile        `json:"cards"`
}

func New(id, title string, maxPlayers int, cards Pile, creator Player) *Game {
	return &Game{
		ID:                 id,
		Title:              title,
		Status:             StatusWaiting,
		MaxPlayers:         maxPlayers,
		Direction:          Clockwise,
		CurrentPlayerIndex: 0,
		NextPlayerIndex:    1,
		CurrentGameColor:   color.Wild,
		Players:            []Player{creator},
		AvailableCards:     Pile{},
		UsedCards:          Pile{},
		Cards:              cards,
	}
}

// Clone returns a deep copy that shares no slices with g.
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	game := *g
	game.Players = make([]Player, len(g.Players))
	for i, player := range g.Players {
		game.Players[i] = player.Clone()
	}
	game.AvailableCards = append(Pile{}, g.AvailableCards...)
	game.UsedCards = append(Pile{}, g.UsedCards...)
	game.Cards = append(Pile{}, g.Cards...)
	return &game
}

func (g *Game) PlayerIndex(playerID string) int {
	for i, player := range g.Players {
		if player.ID == playerID {
			return i
		}
	}
	return -1
}

func (g *Game) HasPlayer(playerID string) bool {
	return g.PlayerIndex(playerID) >= 0
}

func (g *Game) Full() bool {
	return len(g.Players) >= g.MaxPlayers
}

func (g *Game) AllReady() bool {
	for _, player := range g.Players {
		if !player.Ready {
			return false
		}
	}
	return len(g.Players) > 0
}

// CurrentPlayer is nil unless the game has seated players.
func (g *Game) CurrentPlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return &g.Players[Wrap(g.CurrentPlayerIndex, len(g.Players))]
}

// CardCount counts every card the game holds in any container.
func (g *Game) CardCount() int {
	count := len(g.Cards) + len(g.AvailableCards) + len(g.UsedCards)
	for _, player := range g.Players {
		count += len(player.HandCards)
	}
	return count
}

func (g *Game) String() string {
	var lines []string
	top, ok := g.UsedCards.Top()
	if ok {
		lines = append(lines, fmt.Sprintf("Last played card: %s", top))
	}
	var playerStatuses []string
	for i, player := range g.Players {
		playerStatus := fmt.Sprintf("%s (%d card(s))", player.Name, len(player.HandCards))
		if i == g.CurrentPlayerIndex && g.Status == StatusPlaying {
			playerStatus = "*" + playerStatus
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", g.Direction, strings.Join(playerStatuses, ", ")))
	return strings.Join(lines, "\n")
}
