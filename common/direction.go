package common

// Direction is the way something is looking or moving along the x axis.
type Direction int

const (
	Left Direction = iota
	Right
)

// Multiplier is the sign to apply to a speed to move in this direction.
func (d Direction) Multiplier() float64 {
	if d == Right {
		return 1
	}
	return -1
}

func (d Direction) Invert() Direction {
	if d == Right {
		return Left
	}
	return Right
}

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// DirectionTowards returns Right when to lies strictly right of from, Left otherwise.
func DirectionTowards(fromX, toX float64) Direction {
	if toX > fromX {
		return Right
	}
	return Left
}
