package player

import (
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/game"
)

const goodName = "good"

type goodPlayer struct{}

func NewGoodPlayer() Strategy {
	return goodPlayer{}
}

func (p goodPlayer) Name() string {
	return goodName
}

// PickColor names the color most of the hand can follow. Wild cards count
// for every color.
func (p goodPlayer) PickColor(hand []card.Card) color.Color {
	colorCounts := make(map[color.Color]int)
	for _, handCard := range hand {
		if handCard.Wild() {
			for _, c := range color.Playable {
				colorCounts[c]++
			}
		} else {
			colorCounts[handCard.Color]++
		}
	}

	mostFrequentColor := color.Playable[0]
	mostFrequentColorAmount := 0
	for _, c := range color.Playable {
		if colorCounts[c] > mostFrequentColorAmount {
			mostFrequentColorAmount = colorCounts[c]
			mostFrequentColor = c
		}
	}
	return mostFrequentColor
}

// Play keeps the most options open: it puts the card the rest of the hand can
// most often follow.
func (p goodPlayer) Play(playableCards []card.Card, hand []card.Card) card.Card {
	mostDiscardableCardIndex := 0
	maxSpareCards := -1

	for cardIndex, playableCard := range playableCards {
		spareCards := 0
		for _, handCard := range hand {
			if handCard.ID != playableCard.ID && game.Playable(handCard, playableCard, true, playableCard.Color) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return playableCards[mostDiscardableCardIndex]
}
