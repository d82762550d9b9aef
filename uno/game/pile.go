package game

import (
	"github.com/ratel-online/uno-server/uno/card"
)

// Pile is an ordered stack of cards whose head (index 0) is the top.
type Pile []card.Card

// Top returns the head card, or false on an empty pile.
func (p Pile) Top() (card.Card, bool) {
	if len(p) == 0 {
		return card.Card{}, false
	}
	return p[0], true
}

// Push returns a new pile with c on top.
func (p Pile) Push(cards ...card.Card) Pile {
	pile := make(Pile, 0, len(cards)+len(p))
	pile = append(pile, cards...)
	return append(pile, p...)
}

// Draw takes up to amount cards from the head. A short pile yields what it has
// and never more is removed than is returned.
func (p Pile) Draw(amount int) (drawn []card.Card, rest Pile) {
	if amount > len(p) {
		amount = len(p)
	}
	if amount < 0 {
		amount = 0
	}
	drawn = make([]card.Card, amount)
	copy(drawn, p[:amount])
	rest = make(Pile, len(p)-amount)
	copy(rest, p[amount:])
	return drawn, rest
}

func (p Pile) Size() int {
	return len(p)
}
