package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

const DeckSize = 108

// SetupInitialCards builds the canonical deck and shuffles it with rng.
// A nil rng is seeded from the clock. Card ids are drawn from the same source,
// so a seeded rng yields the same deck every time.
func SetupInitialCards(rng *rand.Rand) Pile {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	cards := make(Pile, 0, DeckSize)

	cards = append(cards, createBlackCards(rng)...)
	for _, cardColor := range color.Playable {
		cards = append(cards, createColorCards(rng, cardColor)...)
	}

	shuffleCards(rng, cards)
	return cards
}

func createColorCards(rng *rand.Rand, cardColor color.Color) []card.Card {
	types := []card.Type{
		card.NumberType(0),
		card.SkipType, card.SkipType,
		card.ReverseType, card.ReverseType,
		card.BuyTwoType, card.BuyTwoType,
	}
	for number := 1; number <= 9; number++ {
		types = append(types, card.NumberType(number), card.NumberType(number))
	}

	cards := make([]card.Card, 0, len(types))
	for _, cardType := range types {
		cards = append(cards, card.New(newCardID(rng), cardColor, cardType))
	}
	return cards
}

func createBlackCards(rng *rand.Rand) []card.Card {
	cards := make([]card.Card, 0, 8)
	for i := 0; i < 4; i++ {
		cards = append(cards,
			card.New(newCardID(rng), color.Wild, card.ChangeColorType),
			card.New(newCardID(rng), color.Wild, card.BuyFourType),
		)
	}
	return cards
}

func newCardID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func shuffleCards(rng *rand.Rand, cards []card.Card) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
