package card

import (
	"fmt"
	"strconv"

	"github.com/ratel-online/uno-server/uno/card/action"
)

type Kind int

const (
	Numeric Kind = iota
	Skip
	Reverse
	BuyTwo
	BuyFour
	ChangeColor
)

// Type is a card's face. Number is only meaningful for Numeric.
type Type struct {
	Kind   Kind
	Number int
}

var (
	SkipType        = Type{Kind: Skip}
	ReverseType     = Type{Kind: Reverse}
	BuyTwoType      = Type{Kind: BuyTwo}
	BuyFourType     = Type{Kind: BuyFour}
	ChangeColorType = Type{Kind: ChangeColor}
)

func NumberType(number int) Type {
	return Type{Kind: Numeric, Number: number}
}

func ParseType(text string) (Type, error) {
	switch text {
	case "skip":
		return SkipType, nil
	case "reverse":
		return ReverseType, nil
	case "buy-2":
		return BuyTwoType, nil
	case "buy-4":
		return BuyFourType, nil
	case "change-color":
		return ChangeColorType, nil
	}
	number, err := strconv.Atoi(text)
	if err != nil || number < 0 || number > 9 {
		return Type{}, fmt.Errorf("invalid card type '%s'", text)
	}
	return NumberType(number), nil
}

func (t Type) String() string {
	switch t.Kind {
	case Numeric:
		return strconv.Itoa(t.Number)
	case Skip:
		return "skip"
	case Reverse:
		return "reverse"
	case BuyTwo:
		return "buy-2"
	case BuyFour:
		return "buy-4"
	case ChangeColor:
		return "change-color"
	default:
		panic(fmt.Sprintf("unknown card kind %d", t.Kind))
	}
}

// Actions lists the effects a played card of this type has on the turn order.
func (t Type) Actions() []action.Action {
	switch t.Kind {
	case Numeric:
		return []action.Action{}
	case Skip:
		return []action.Action{
			action.NewSkipTurnAction(),
		}
	case Reverse:
		return []action.Action{
			action.NewReverseTurnsAction(),
		}
	case BuyTwo:
		return []action.Action{
			action.NewDrawCardsAction(2),
		}
	case BuyFour:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewDrawCardsAction(4),
		}
	case ChangeColor:
		return []action.Action{
			action.NewPickColorAction(),
		}
	default:
		panic(fmt.Sprintf("unknown card kind %d", t.Kind))
	}
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
