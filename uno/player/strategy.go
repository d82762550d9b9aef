package player

import (
	"fmt"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

// Strategy picks moves for a player whose turn is played automatically.
type Strategy interface {
	Name() string
	// Play chooses one of playableCards, which is never empty.
	Play(playableCards []card.Card, hand []card.Card) card.Card
	PickColor(hand []card.Card) color.Color
}

// ByName returns the strategy called name. An empty name or "off" means no
// strategy.
func ByName(name string) (Strategy, error) {
	switch name {
	case "", "off":
		return nil, nil
	case naiveName:
		return NewNaivePlayer(), nil
	case goodName:
		return NewGoodPlayer(), nil
	}
	return nil, fmt.Errorf("unknown strategy '%s'", name)
}
