package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/stretchr/testify/require"
)

func TestSetupInitialCards(t *testing.T) {
	t.Run("returns_all_108_standard_uno_cards", func(t *testing.T) {
		cards := game.SetupInitialCards(nil)
		require.Len(t, cards, game.DeckSize)
		require.ElementsMatch(t, standardDeckFaces(), faces(cards))
	})

	t.Run("card_ids_are_unique", func(t *testing.T) {
		cards := game.SetupInitialCards(nil)
		ids := map[string]bool{}
		for _, c := range cards {
			require.NotEmpty(t, c.ID)
			require.False(t, ids[c.ID], "duplicated id %s", c.ID)
			ids[c.ID] = true
		}
	})

	t.Run("is_deterministic_given_a_seed", func(t *testing.T) {
		first := game.SetupInitialCards(rand.New(rand.NewSource(42)))
		second := game.SetupInitialCards(rand.New(rand.NewSource(42)))
		require.Equal(t, first, second)
	})

	t.Run("different_seeds_shuffle_differently", func(t *testing.T) {
		first := game.SetupInitialCards(rand.New(rand.NewSource(1)))
		second := game.SetupInitialCards(rand.New(rand.NewSource(2)))
		require.NotEqual(t, faces(first), faces(second))
	})
}

type face struct {
	color    color.Color
	cardType card.Type
}

func faces(cards []card.Card) []face {
	result := make([]face, 0, len(cards))
	for _, c := range cards {
		result = append(result, face{color: c.Color, cardType: c.Type})
	}
	return result
}

func standardDeckFaces() []face {
	result := make([]face, 0, game.DeckSize)
	for i := 0; i < 4; i++ {
		result = append(result,
			face{color: color.Wild, cardType: card.ChangeColorType},
			face{color: color.Wild, cardType: card.BuyFourType},
		)
	}
	for _, c := range []color.Color{color.Red, color.Yellow, color.Green, color.Blue} {
		result = append(result,
			face{color: c, cardType: card.NumberType(0)},
			face{color: c, cardType: card.SkipType},
			face{color: c, cardType: card.SkipType},
			face{color: c, cardType: card.ReverseType},
			face{color: c, cardType: card.ReverseType},
			face{color: c, cardType: card.BuyTwoType},
			face{color: c, cardType: card.BuyTwoType},
		)
		for number := 1; number <= 9; number++ {
			result = append(result,
				face{color: c, cardType: card.NumberType(number)},
				face{color: c, cardType: card.NumberType(number)},
			)
		}
	}
	return result
}
