package engine

// StateHash returns a 64-bit FNV-1a hash over the full match state —
// hands, knowledge masks, both piles, phase, and turn bookkeeping. The
// same state always hashes the same, which makes it useful for replay
// dedup, derived seeding, and asserting that a rejected action left the
// state untouched.
func (g *GameState) StateHash() uint64 {
	h := uint64(14695981039346656037) // FNV-1a offset basis
	const prime = uint64(1099511628211)

	mix := func(v uint64) {
		h ^= v
		h *= prime
	}

	for s := uint8(0); s < g.SeatCount; s++ {
		for i := 0; i < HandSize; i++ {
			mix(uint64(g.Seats[s].Slots[i]))
		}
		for v := 0; v < MaxSeats; v++ {
			mix(uint64(g.Seats[s].Known[v]))
		}
	}
	for i := uint8(0); i < g.Deck.DrawLen; i++ {
		mix(uint64(g.Deck.Draw[i]))
	}
	for i := uint8(0); i < g.Deck.DiscardLen; i++ {
		mix(uint64(g.Deck.Discard[i]))
	}
	mix(uint64(g.Deck.DrawLen)<<8 | uint64(g.Deck.DiscardLen))
	mix(uint64(g.CurrentSeat)<<32 | uint64(g.TurnNumber))
	mix(uint64(g.Phase)<<16 | uint64(g.Drawn))
	mix(uint64(g.Pending.Kind)<<24 | uint64(g.Pending.Seat)<<16 |
		uint64(g.Pending.KingSeat)<<8 | uint64(g.Pending.KingSlot))
	mix(uint64(g.Pending.KingCard))
	if g.CambiaCaller >= 0 {
		mix(uint64(g.CambiaCaller+1)<<8 | uint64(g.TurnsLeft))
	}
	return h
}
