package game

type Direction string

const (
	Clockwise        Direction = "clockwise"
	Counterclockwise Direction = "counterclockwise"
)

const (
	left  = -1
	right = 1
)

// Step is the index offset of one move in this direction.
func (d Direction) Step() int {
	if d == Counterclockwise {
		return left
	}
	return right
}

func (d Direction) Reverse() Direction {
	switch d {
	case Counterclockwise:
		return Clockwise
	default:
		return Counterclockwise
	}
}

// Wrap maps any index, negative ones included, into [0, size).
func Wrap(index, size int) int {
	if size <= 0 {
		return 0
	}
	return (index%size + size) % size
}

// Next is the seat reached from index after steps moves in direction d.
func Next(index, steps, size int, d Direction) int {
	return Wrap(index+steps*d.Step(), size)
}
