package game

import (
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

// Playable reports whether candidateCard may be put on top of the discard
// pile. hasTop is false while the pile is empty, which allows any card.
// gameColor only matters when the top card is wild and a color was picked.
func Playable(candidateCard card.Card, topCard card.Card, hasTop bool, gameColor color.Color) bool {
	if !hasTop {
		return true
	}
	if candidateCard.Color == topCard.Color {
		return true
	}
	if topCard.Wild() && gameColor != color.Wild && candidateCard.Color == gameColor {
		return true
	}

	switch candidateCard.Type.Kind {
	case card.ChangeColor, card.BuyFour:
		return true
	default:
		return candidateCard.Type == topCard.Type
	}
}
