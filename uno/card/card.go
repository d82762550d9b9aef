package card

import (
	"fmt"

	"github.com/ratel-online/uno-server/uno/card/action"
	"github.com/ratel-online/uno-server/uno/card/color"
)

type Card struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Color color.Color `json:"color"`
	Type  Type        `json:"type"`

	// CanBeUsed is derived for cards in the current player's hand.
	CanBeUsed bool `json:"canBeUsed"`
}

func New(id string, cardColor color.Color, cardType Type) Card {
	return Card{
		ID:    id,
		Name:  name(cardColor, cardType),
		Color: cardColor,
		Type:  cardType,
	}
}

func name(cardColor color.Color, cardType Type) string {
	if cardColor == color.Wild {
		return cardType.String()
	}
	return fmt.Sprintf("%s %s", cardColor, cardType)
}

func (c Card) Actions() []action.Action {
	return c.Type.Actions()
}

func (c Card) Wild() bool {
	return c.Color == color.Wild
}

func (c Card) String() string {
	return c.Color.Paintf("[%s]", c.Name)
}
