package action

import "fmt"

// Action is one effect of playing a card. Only this package implements it,
// so a type switch over the four kinds below is exhaustive.
type Action interface {
	fmt.Stringer
	sealed()
}

// DrawCardsAction makes the next player take cards from the draw pile.
type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

func (a DrawCardsAction) String() string {
	return fmt.Sprintf("draw %d", a.amount)
}

func (DrawCardsAction) sealed() {}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

func (ReverseTurnsAction) String() string {
	return "reverse"
}

func (ReverseTurnsAction) sealed() {}

type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

func (SkipTurnAction) String() string {
	return "skip"
}

func (SkipTurnAction) sealed() {}

// PickColorAction lets the player name the color that must follow.
type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}

func (PickColorAction) String() string {
	return "pick color"
}

func (PickColorAction) sealed() {}
