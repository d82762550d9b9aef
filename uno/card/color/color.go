package color

import (
	"fmt"

	"github.com/fatih/color"
)

type Color string

const (
	Red    Color = "red"
	Yellow Color = "yellow"
	Green  Color = "green"
	Blue   Color = "blue"
	Wild   Color = "wild"
)

// Playable are the colors a card can be painted with or a wild card can pick.
var Playable = []Color{Red, Yellow, Green, Blue}

var colorFunctions = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Wild:   color.New(color.FgHiMagenta).SprintfFunc(),
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(text string, args ...interface{}) string {
	colorFunction, ok := colorFunctions[c]
	if !ok {
		return fmt.Sprintf(text, args...)
	}
	return colorFunction(text, args...)
}

func (c Color) Valid() bool {
	_, ok := colorFunctions[c]
	return ok
}

func (c Color) String() string {
	return string(c)
}

func ByName(name string) (Color, error) {
	c := Color(name)
	if !c.Valid() {
		return "", fmt.Errorf("invalid color '%s'", name)
	}
	return c, nil
}

// Pickable reports whether a wild card may be given this color.
func (c Color) Pickable() bool {
	return c.Valid() && c != Wild
}
