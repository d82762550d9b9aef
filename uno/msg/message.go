package msg

import (
	"fmt"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

var Message = MessageWriter{}

// MessageWriter narrates what happens at a table.
type MessageWriter struct{}

func Sprintfln(format string, args ...interface{}) string {
	return fmt.Sprintln(fmt.Sprintf(format, args...))
}

func (m MessageWriter) GameStarted(playerName string, players int) string {
	return Sprintfln("Game started with %d players, %s goes first!", players, playerName)
}

func (m MessageWriter) PlayerDrewAndPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s drew and played %s!", playerName, card)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color.Paint(color.String()))
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) PlayerTimedOut(playerName string) string {
	return Sprintfln("%s ran out of time!", playerName)
}

func (m MessageWriter) PlayerUno(playerName string) string {
	return Sprintfln("%s has one card left, UNO!", playerName)
}

func (m MessageWriter) TurnOrderReversed() string {
	return fmt.Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) Welcome(playerName string) string {
	return Sprintfln(
		"Hi %s, WELCOME TO %s%s%s",
		playerName,
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}
