package position

// diagonals holds the four (dRow, dCol) unit steps, in a fixed order so that
// target enumeration is deterministic.
var diagonals = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// OnSameDiagonal reports whether a and b are distinct cells sharing a diagonal.
func OnSameDiagonal(a, b Pos) bool {
	if !a.IsValid() || !b.IsValid() || a == b {
		return false
	}
	return abs(a.Row()-b.Row()) == abs(a.Col()-b.Col())
}

// DiagonalDistance returns the number of diagonal steps from a to b, or 0 when
// they do not share a diagonal.
func DiagonalDistance(a, b Pos) int {
	if !OnSameDiagonal(a, b) {
		return 0
	}
	return abs(a.Row() - b.Row())
}

// Direction returns the unit step leading from a towards b. Both components
// are 0 when a and b are not on a shared diagonal.
func Direction(a, b Pos) (dRow, dCol int) {
	if !OnSameDiagonal(a, b) {
		return 0, 0
	}
	return sign(b.Row() - a.Row()), sign(b.Col() - a.Col())
}

// Between returns the cells strictly between a and b, ordered from a to b.
// The result is empty for neighbours and for cells not on a shared diagonal.
func Between(a, b Pos) []Pos {
	d := DiagonalDistance(a, b)
	if d < 2 {
		return nil
	}
	dRow, dCol := Direction(a, b)
	between := make([]Pos, 0, d-1)
	for i := 1; i < d; i++ {
		between = append(between, New(a.Row()+i*dRow, a.Col()+i*dCol))
	}
	return between
}

// DiagonalTargets returns the cells exactly steps diagonal moves away from
// origin, clipped to the board.
func DiagonalTargets(origin Pos, steps int) []Pos {
	if !origin.IsValid() || steps < 1 {
		return nil
	}
	var targets []Pos
	for _, d := range diagonals {
		if p := New(origin.Row()+steps*d[0], origin.Col()+steps*d[1]); p != Invalid {
			targets = append(targets, p)
		}
	}
	return targets
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
