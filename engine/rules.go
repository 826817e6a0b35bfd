package engine

// Rules fixes the rule variant for a match. The defaults below are the
// documented rule table this engine implements:
//
//	Seats            2–6 (default 4), each with exactly 4 card slots.
//	Initial peek     each seat sees its own slots 0 and 1 at the deal.
//	Point values     Joker 0, Ace 1, 2–10 face, J/Q 10,
//	                 K♥/K♦ −1, K♣/K♠ 10.
//	Powers           7,8 peek own slot; 9,10 peek another seat's slot;
//	                 J,Q blind swap; K peek another seat's slot then
//	                 optionally swap it with an own slot.
//	Cambio           an explicit action, declared before drawing or while
//	                 holding the drawn card (which is then discarded
//	                 without its power); every other seat gets exactly
//	                 one more turn.
//	Tie-break        a Cambio caller among the tied lowest scores loses.
type Rules struct {
	Seats        uint8  // number of seats (2–6); 0 treated as 4
	NumJokers    uint8  // jokers in the deck (0–2)
	MaxTurns     uint16 // safety cap; 0 = unlimited
	InitialPeeks uint8  // own slots revealed at the deal (0–4)
}

// DefaultRules returns the standard rule variant.
func DefaultRules() Rules {
	return Rules{
		Seats:        4,
		NumJokers:    2,
		MaxTurns:     200,
		InitialPeeks: 2,
	}
}

// seatCount returns the effective number of seats, treating 0 as 4 and
// clamping to [2, MaxSeats].
func (r *Rules) seatCount() uint8 {
	n := r.Seats
	if n == 0 {
		n = 4
	}
	if n < 2 {
		n = 2
	}
	if n > MaxSeats {
		n = MaxSeats
	}
	return n
}
