package cave

// Line returns the integer cells stepped through from from towards to.
// The driving axis is the longer of |dx| and |dy|; the error accumulator
// starts at half the longest length and wraps at the longest length.
// The result holds max(|dx|, |dy|) cells, starting at from; to is excluded.
func Line(from, to Coord) []Coord {
	x, y := from.X, from.Y
	dx := to.X - from.X
	dy := to.Y - from.Y

	inverted := false
	step := sign(dx)
	gradientStep := sign(dy)
	longest := abs(dx)
	shortest := abs(dy)

	if longest < shortest {
		inverted = true
		longest, shortest = shortest, longest
		step, gradientStep = gradientStep, step
	}

	line := make([]Coord, 0, longest)
	accumulation := longest / 2
	for i := 0; i < longest; i++ {
		line = append(line, Coord{x, y})

		if inverted {
			y += step
		} else {
			x += step
		}

		accumulation += shortest
		if accumulation >= longest {
			if inverted {
				x += gradientStep
			} else {
				y += gradientStep
			}
			accumulation -= longest
		}
	}
	return line
}

// CarveDisc sets every in-bounds cell within radius r of c to floor.
func CarveDisc(g *Grid, c Coord, r int) {
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			g.Set(c.X+dx, c.Y+dy, Floor)
		}
	}
}

// CarvePassage clears a corridor of radius r between two tiles and returns
// the line it followed.
func CarvePassage(g *Grid, from, to Coord, r int) []Coord {
	line := Line(from, to)
	for _, c := range line {
		CarveDisc(g, c, r)
	}
	return line
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
