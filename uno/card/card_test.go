package card_test

import (
	"encoding/json"
	"testing"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/action"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	require.Equal(t, "red 7", card.New("a", color.Red, card.NumberType(7)).Name)
	require.Equal(t, "blue skip", card.New("b", color.Blue, card.SkipType).Name)
	require.Equal(t, "buy-4", card.New("c", color.Wild, card.BuyFourType).Name)
	require.Equal(t, "change-color", card.New("d", color.Wild, card.ChangeColorType).Name)
}

func TestParseType(t *testing.T) {
	for _, text := range []string{"0", "9", "skip", "reverse", "buy-2", "buy-4", "change-color"} {
		cardType, err := card.ParseType(text)
		require.NoError(t, err)
		require.Equal(t, text, cardType.String())
	}
	for _, text := range []string{"10", "-1", "block", ""} {
		_, err := card.ParseType(text)
		require.Error(t, err, text)
	}
}

func TestActions(t *testing.T) {
	require.Empty(t, card.NumberType(3).Actions())
	require.Equal(t, []action.Action{action.NewSkipTurnAction()}, card.SkipType.Actions())
	require.Equal(t, []action.Action{action.NewReverseTurnsAction()}, card.ReverseType.Actions())
	require.Equal(t, []action.Action{action.NewDrawCardsAction(2)}, card.BuyTwoType.Actions())
	require.Equal(t, []action.Action{action.NewPickColorAction(), action.NewDrawCardsAction(4)}, card.BuyFourType.Actions())
	require.Equal(t, []action.Action{action.NewPickColorAction()}, card.ChangeColorType.Actions())
}

func TestUnknownKindPanics(t *testing.T) {
	require.Panics(t, func() {
		card.Type{Kind: card.Kind(42)}.Actions()
	})
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(card.New("a", color.Green, card.BuyTwoType))
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"a","name":"green buy-2","color":"green","type":"buy-2","canBeUsed":false}`, string(data))

	var decoded card.Card
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, card.BuyTwoType, decoded.Type)
}
