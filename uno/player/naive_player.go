package player

import (
	"math/rand"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

const naiveName = "naive"

type naivePlayer struct{}

func NewNaivePlayer() Strategy {
	return naivePlayer{}
}

func (p naivePlayer) Name() string {
	return naiveName
}

func (p naivePlayer) PickColor(hand []card.Card) color.Color {
	return color.Playable[rand.Intn(len(color.Playable))]
}

func (p naivePlayer) Play(playableCards []card.Card, hand []card.Card) card.Card {
	return playableCards[0]
}
