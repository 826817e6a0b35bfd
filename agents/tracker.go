package agents

import (
	"github.com/HannahHughes30/cambio.ai/engine"
	"github.com/HannahHughes30/cambio.ai/env"
)

// fallbackUnknown is the expected value of a uniformly random card when
// counting is impossible (empty remaining pool).
const fallbackUnknown = 4.5

// Tracker counts cards across one episode: every card that has shown on
// the discard pile plus every slot the viewer's knowledge mask exposes
// is removed from the unknown pool, and the mean value of the remainder
// prices unknown slots. When a reshuffle folds the discard pile back
// into the draw pile the discard memory is rebuilt from the visible top,
// since those cards are circulating again.
type Tracker struct {
	seen        map[engine.Card]struct{}
	lastDiscard uint8
}

// NewTracker returns an empty tracker; feed it every observation of one
// episode via Observe and start a new Tracker per episode.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[engine.Card]struct{})}
}

// Observe ingests one observation, updating discard memory.
func (t *Tracker) Observe(obs env.Observation) {
	if obs.DiscardCount < t.lastDiscard {
		// Reshuffle: everything but the surviving top is back in play.
		t.seen = make(map[engine.Card]struct{})
	}
	t.lastDiscard = obs.DiscardCount
	if obs.DiscardTop != engine.EmptyCard {
		t.seen[obs.DiscardTop] = struct{}{}
	}
}

// accounted collects every card identity the viewer can currently place:
// remembered discards, known slots, and the pending drawn card.
func (t *Tracker) accounted(obs env.Observation) map[engine.Card]struct{} {
	acc := make(map[engine.Card]struct{}, len(t.seen)+8)
	for c := range t.seen {
		acc[c] = struct{}{}
	}
	for _, seat := range obs.Seats {
		for _, slot := range seat.Slots {
			if slot.Known {
				acc[slot.Card] = struct{}{}
			}
		}
	}
	if obs.Drawn != engine.EmptyCard {
		acc[obs.Drawn] = struct{}{}
	}
	return acc
}

// ExpectedUnknown returns the mean point value over all cards the
// viewer cannot currently place.
func (t *Tracker) ExpectedUnknown(obs env.Observation) float64 {
	acc := t.accounted(obs)
	var (
		sum float64
		n   int
	)
	forEachDeckCard(func(c engine.Card) {
		if _, ok := acc[c]; ok {
			return
		}
		sum += float64(c.Value())
		n++
	})
	if n == 0 {
		return fallbackUnknown
	}
	return sum / float64(n)
}

// ExpectedScore prices the viewer's own hand: exact values for known
// slots, ExpectedUnknown for the rest.
func (t *Tracker) ExpectedScore(obs env.Observation) float64 {
	unknown := t.ExpectedUnknown(obs)
	var total float64
	for _, slot := range obs.Seats[obs.Viewer].Slots {
		if slot.Known {
			total += float64(slot.Card.Value())
		} else {
			total += unknown
		}
	}
	return total
}

// forEachDeckCard visits the full 54-card deck (two jokers included).
func forEachDeckCard(fn func(engine.Card)) {
	for suit := engine.SuitHearts; suit <= engine.SuitSpades; suit++ {
		for rank := engine.RankAce; rank <= engine.RankKing; rank++ {
			fn(engine.NewCard(suit, rank))
		}
	}
	fn(engine.NewCard(engine.SuitRedJoker, engine.RankJoker))
	fn(engine.NewCard(engine.SuitBlackJoker, engine.RankJoker))
}
