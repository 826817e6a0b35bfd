package engine

// Scores returns each seat's hand value, face down or not.
func (g *GameState) Scores() []int {
	scores := make([]int, g.SeatCount)
	for s := uint8(0); s < g.SeatCount; s++ {
		scores[s] = g.Seats[s].Value()
	}
	return scores
}

// Winners returns the winning seats after the tie-break rule. Winner is
// the seat with the minimum score. On a tie, a Cambio caller among the
// tied lowest loses the tie (penalizing false calls); the remaining
// tied seats all win. An aborted match has no winners.
func (g *GameState) Winners() []uint8 {
	if g.Phase != PhaseGameOver {
		return nil
	}

	scores := g.Scores()
	minScore := scores[0]
	for _, sc := range scores[1:] {
		if sc < minScore {
			minScore = sc
		}
	}

	var winners []uint8
	for s := uint8(0); s < g.SeatCount; s++ {
		if scores[s] == minScore {
			winners = append(winners, s)
		}
	}

	if len(winners) > 1 && g.CambiaCaller >= 0 {
		caller := uint8(g.CambiaCaller)
		for i, w := range winners {
			if w == caller {
				winners = append(winners[:i], winners[i+1:]...)
				break
			}
		}
	}
	return winners
}

// Utilities returns the terminal reward per seat: a sole winner gets
// +1 and everyone else -1; a k-way tie (after the tie-break) splits the
// win as +1/k each. Non-terminal and aborted matches yield all zeros.
func (g *GameState) Utilities() []float64 {
	u := make([]float64, g.SeatCount)
	winners := g.Winners()
	if len(winners) == 0 {
		return u
	}
	for s := range u {
		u[s] = -1
	}
	share := 1.0 / float64(len(winners))
	for _, w := range winners {
		u[w] = share
	}
	return u
}
