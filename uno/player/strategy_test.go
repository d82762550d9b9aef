package player

import (
	"testing"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/stretchr/testify/require"
)

func num(id string, c color.Color, number int) card.Card {
	return card.New(id, c, card.NumberType(number))
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "off"} {
		strategy, err := ByName(name)
		require.NoError(t, err)
		require.Nil(t, strategy)
	}

	strategy, err := ByName("good")
	require.NoError(t, err)
	require.Equal(t, "good", strategy.Name())

	strategy, err = ByName("naive")
	require.NoError(t, err)
	require.Equal(t, "naive", strategy.Name())

	_, err = ByName("clever")
	require.Error(t, err)
}

func TestGoodPlayer(t *testing.T) {
	t.Run("plays_the_card_the_hand_follows_best", func(t *testing.T) {
		hand := []card.Card{
			num("r1", color.Red, 1),
			num("b1", color.Blue, 1),
			num("b5", color.Blue, 5),
			num("b7", color.Blue, 7),
		}
		playable := []card.Card{hand[0], hand[1]}
		require.Equal(t, "b1", NewGoodPlayer().Play(playable, hand).ID)
	})

	t.Run("picks_the_most_frequent_color", func(t *testing.T) {
		hand := []card.Card{
			num("g1", color.Green, 1),
			num("g2", color.Green, 2),
			num("y3", color.Yellow, 3),
			card.New("wild", color.Wild, card.ChangeColorType),
		}
		require.Equal(t, color.Green, NewGoodPlayer().PickColor(hand))
	})

	t.Run("empty_hand_still_picks_a_color", func(t *testing.T) {
		require.True(t, NewGoodPlayer().PickColor(nil).Pickable())
	})
}

func TestNaivePlayer(t *testing.T) {
	hand := []card.Card{num("r1", color.Red, 1), num("r2", color.Red, 2)}
	require.Equal(t, "r1", NewNaivePlayer().Play(hand, hand).ID)
	for i := 0; i < 20; i++ {
		require.True(t, NewNaivePlayer().PickColor(hand).Pickable())
	}
}
