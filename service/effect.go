package service

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/action"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/ratel-online/uno-server/uno/msg"
)

// applyCardEffect runs the actions of a card that was just played. The turn
// has not advanced yet, so the victim of a draw is the staged next player.
func (e *Engine) applyCardEffect(g *game.Game, playedCard card.Card) error {
	size := len(g.Players)
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.ReverseTurnsAction:
			g.Direction = g.Direction.Reverse()
			g.NextPlayerIndex = game.Next(g.CurrentPlayerIndex, 1, size, g.Direction)
			log.Info(msg.Message.TurnOrderReversed())
		case action.SkipTurnAction:
			log.Info(msg.Message.PlayerTurnSkipped(g.Players[game.Wrap(g.NextPlayerIndex, size)].Name))
			g.NextPlayerIndex = game.Next(g.NextPlayerIndex, 1, size, g.Direction)
		case action.DrawCardsAction:
			drawCards(g, &g.Players[game.Wrap(g.NextPlayerIndex, size)], cardAction.Amount())
		case action.PickColorAction:
			// the picked color was applied when the card was put
		default:
			return fmt.Errorf("unknown action %T on card %s", cardAction, playedCard.Name)
		}
	}
	return nil
}
