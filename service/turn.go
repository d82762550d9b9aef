package service

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/event"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/ratel-online/uno-server/uno/msg"
)

func (e *Engine) startGame(g *game.Game) error {
	deck := g.Cards
	for i := range g.Players {
		hand, rest := deck.Draw(e.options.HandSize)
		deck = rest
		g.Players[i].HandCards = hand
		g.Players[i].UsedCards = []string{}
	}
	g.Cards = game.Pile{}
	g.AvailableCards = deck
	g.UsedCards = game.Pile{}
	g.Status = game.StatusPlaying
	g.Direction = game.Clockwise
	g.CurrentGameColor = color.Wild
	g.CurrentPlayerIndex = 0
	g.NextPlayerIndex = game.Next(0, 1, len(g.Players), g.Direction)
	markCurrentPlayer(g, 0)
	if err := e.store.Set(g.ID, g); err != nil {
		return err
	}
	log.Info(msg.Message.GameStarted(g.Players[0].Name, len(g.Players)))
	e.emitter.Emit(g.ID, event.GameStarted, g)
	e.timers.schedule(g.ID, g.Round)
	return nil
}

// nextTurn settles the outcome of the player who just acted and hands the
// turn to the staged next player.
func (e *Engine) nextTurn(g *game.Game) error {
	current := g.CurrentPlayer()
	switch current.Outcome() {
	case game.OutcomeWinner:
		log.Info(msg.Message.WinnerFound(current.Name))
		e.emitter.Emit(g.ID, event.PlayerWon, current.ID)
		return e.endGame(g)
	case game.OutcomeUno:
		log.Info(msg.Message.PlayerUno(current.Name))
		e.emitter.Emit(g.ID, event.PlayerUno, current.ID)
	}

	size := len(g.Players)
	next := game.Wrap(g.NextPlayerIndex, size)
	g.NextPlayerIndex = game.Next(next, 1, size, g.Direction)
	markCurrentPlayer(g, next)
	g.Round++
	g.CurrentPlayerIndex = next
	if err := e.store.Set(g.ID, g); err != nil {
		return err
	}
	e.timers.schedule(g.ID, g.Round)
	return nil
}

func (e *Engine) endGame(g *game.Game) error {
	g.Status = game.StatusEnded
	for i := range g.Players {
		g.Players[i].ClearPlayableCards()
	}
	if err := e.store.Set(g.ID, g); err != nil {
		return err
	}
	e.timers.stop(g.ID)
	log.Infof("game %s ended after %d rounds\n", g.ID, g.Round)
	e.emitter.Emit(g.ID, event.GameEnded)
	return nil
}

// markCurrentPlayer computes card eligibility for the player at index and
// clears it for everybody else.
func markCurrentPlayer(g *game.Game, index int) {
	for i := range g.Players {
		if i == index {
			g.Players[i].MarkPlayableCards(g.UsedCards, g.CurrentGameColor)
		} else {
			g.Players[i].ClearPlayableCards()
		}
	}
}
