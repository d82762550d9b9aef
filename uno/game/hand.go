package game

import (
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

// AddCards puts cards at the front of the hand, most recent draw first.
func (p *Player) AddCards(cards []card.Card) {
	hand := make([]card.Card, 0, len(cards)+len(p.HandCards))
	hand = append(hand, cards...)
	p.HandCards = append(hand, p.HandCards...)
}

func (p *Player) Card(cardID string) (card.Card, bool) {
	for _, cardInHand := range p.HandCards {
		if cardInHand.ID == cardID {
			return cardInHand, true
		}
	}
	return card.Card{}, false
}

// RemoveCard takes the card with cardID out of the hand, keeping the order of
// the others.
func (p *Player) RemoveCard(cardID string) (card.Card, bool) {
	for index, cardInHand := range p.HandCards {
		if cardInHand.ID == cardID {
			hand := make([]card.Card, 0, len(p.HandCards)-1)
			hand = append(hand, p.HandCards[:index]...)
			p.HandCards = append(hand, p.HandCards[index+1:]...)
			return cardInHand, true
		}
	}
	return card.Card{}, false
}

// MarkPlayableCards flags every hand card against the discard pile and derives
// CanBuyCard.
func (p *Player) MarkPlayableCards(used Pile, gameColor color.Color) {
	top, hasTop := used.Top()
	canBuy := true
	for i := range p.HandCards {
		p.HandCards[i].CanBeUsed = Playable(p.HandCards[i], top, hasTop, gameColor)
		if p.HandCards[i].CanBeUsed {
			canBuy = false
		}
	}
	p.IsCurrentRoundPlayer = true
	p.CanBuyCard = canBuy
}

// ClearPlayableCards marks a player who is not acting this round.
func (p *Player) ClearPlayableCards() {
	for i := range p.HandCards {
		p.HandCards[i].CanBeUsed = false
	}
	p.IsCurrentRoundPlayer = false
	p.CanBuyCard = false
}

func (p *Player) PlayableCards() []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range p.HandCards {
		if candidateCard.CanBeUsed {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}
