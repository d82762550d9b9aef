package game_test

import (
	"testing"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	cards := game.SetupInitialCards(nil)
	g := game.New("g1", "Someone", 4, cards, game.NewPlayer("p1", "Someone"))

	require.Equal(t, game.StatusWaiting, g.Status)
	require.Equal(t, game.Clockwise, g.Direction)
	require.Equal(t, 0, g.CurrentPlayerIndex)
	require.Equal(t, 1, g.NextPlayerIndex)
	require.Len(t, g.Players, 1)
	require.Equal(t, game.DeckSize, g.CardCount())
	require.True(t, g.HasPlayer("p1"))
	require.False(t, g.HasPlayer("p2"))
	require.False(t, g.Full())
}

func TestClone(t *testing.T) {
	g := game.New("g1", "Someone", 4, game.Pile{numberCard("r1", color.Red, 1)}, game.NewPlayer("p1", "Someone"))
	g.Players[0].AddCards([]card.Card{numberCard("b2", color.Blue, 2)})

	clone := g.Clone()
	clone.Players[0].HandCards[0].CanBeUsed = true
	clone.Players[0].Ready = true
	clone.Cards[0] = numberCard("g3", color.Green, 3)

	require.False(t, g.Players[0].HandCards[0].CanBeUsed)
	require.False(t, g.Players[0].Ready)
	require.Equal(t, "r1", g.Cards[0].ID)
}

func TestAllReady(t *testing.T) {
	g := game.New("g1", "Someone", 4, nil, game.NewPlayer("p1", "Someone"))
	g.Players = append(g.Players, game.NewPlayer("p2", "Somebody"))
	require.False(t, g.AllReady())
	g.Players[0].Ready = true
	require.False(t, g.AllReady())
	g.Players[1].Ready = true
	require.True(t, g.AllReady())
}
