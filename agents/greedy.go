package agents

import (
	"github.com/HannahHughes30/cambio.ai/engine"
	"github.com/HannahHughes30/cambio.ai/env"
)

// GreedyAgent is a myopic value-minimizing policy:
//
//   - calls Cambio when its expected hand value is at or below
//     CambioThreshold, otherwise draws;
//   - swaps the drawn card over its worst known slot when that lowers
//     the hand, otherwise discards;
//   - always peeks, preferring unknown slots;
//   - blind-swaps its worst known card away;
//   - after the King look, swaps only when the looked-at card beats the
//     worst known own card.
//
// Unknown slots are priced by the Tracker when one is attached, by a
// flat prior otherwise.
type GreedyAgent struct {
	// CambioThreshold is the expected hand value at or below which the
	// agent calls Cambio.
	CambioThreshold float64

	// Tracker refines unknown-card pricing via card counting; nil means
	// a flat prior.
	Tracker *Tracker
}

// NewGreedyAgent returns the baseline heuristic with the standard
// calling threshold.
func NewGreedyAgent() *GreedyAgent {
	return &GreedyAgent{CambioThreshold: 10}
}

// NewTrackingAgent returns the heuristic backed by a card-counting
// tracker. Use one agent per episode.
func NewTrackingAgent() *GreedyAgent {
	return &GreedyAgent{CambioThreshold: 10, Tracker: NewTracker()}
}

func (a *GreedyAgent) Act(obs env.Observation) engine.Action {
	if a.Tracker != nil {
		a.Tracker.Observe(obs)
	}

	switch obs.Phase {
	case engine.PhaseAwaitingDraw:
		return a.actAwaitingDraw(obs)
	case engine.PhaseDecidingDrawn:
		return a.actDecidingDrawn(obs)
	case engine.PhasePeeking, engine.PhaseChoosingSwapTargets:
		return a.actPower(obs)
	case engine.PhaseKingDecision:
		return a.actKingDecision(obs)
	}
	// Unreachable for a live observation; fall back to anything legal.
	return obs.LegalActions[0]
}

func (a *GreedyAgent) unknownValue(obs env.Observation) float64 {
	if a.Tracker != nil {
		return a.Tracker.ExpectedUnknown(obs)
	}
	return fallbackUnknown
}

// expectedScore prices the own hand with known values plus the unknown
// prior.
func (a *GreedyAgent) expectedScore(obs env.Observation) float64 {
	unknown := a.unknownValue(obs)
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

// worstKnownSlot returns the own slot holding the highest known value,
// or false when nothing is known.
func (a *GreedyAgent) worstKnownSlot(obs env.Observation) (uint8, int8, bool) {
	var (
		pos   uint8
		value int8
		found bool
	)
	for i, slot := range obs.Seats[obs.Viewer].Slots {
		if slot.Known && (!found || slot.Card.Value() > value) {
			pos, value, found = uint8(i), slot.Card.Value(), true
		}
	}
	return pos, value, found
}

// firstUnknownOwnSlot returns an own slot the agent has not seen.
func (a *GreedyAgent) firstUnknownOwnSlot(obs env.Observation) (uint8, bool) {
	for i, slot := range obs.Seats[obs.Viewer].Slots {
		if !slot.Known {
			return uint8(i), true
		}
	}
	return 0, false
}

// firstOpponentTarget returns an opponent seat and slot, preferring a
// slot the agent has no knowledge of.
func (a *GreedyAgent) firstOpponentTarget(obs env.Observation) (uint8, uint8) {
	seat, slot := obs.Viewer, uint8(0)
	for _, sv := range obs.Seats {
		if sv.Seat == obs.Viewer {
			continue
		}
		if seat == obs.Viewer {
			seat = sv.Seat // first opponent as fallback
		}
		for j, s := range sv.Slots {
			if !s.Known {
				return sv.Seat, uint8(j)
			}
		}
	}
	return seat, slot
}

func (a *GreedyAgent) actAwaitingDraw(obs env.Observation) engine.Action {
	canCall := false
	for _, la := range obs.LegalActions {
		if la.Type == engine.ActionCallCambio {
			canCall = true
		}
	}
	if canCall && a.expectedScore(obs) <= a.CambioThreshold {
		return engine.CallCambio()
	}
	return engine.Draw()
}

func (a *GreedyAgent) actDecidingDrawn(obs env.Observation) engine.Action {
	drawnValue := obs.Drawn.Value()

	if pos, worst, ok := a.worstKnownSlot(obs); ok && drawnValue < worst {
		return engine.SwapDrawn(pos)
	}
	// A low drawn card still beats an unknown slot in expectation.
	if pos, ok := a.firstUnknownOwnSlot(obs); ok && float64(drawnValue) < a.unknownValue(obs) {
		return engine.SwapDrawn(pos)
	}
	return engine.DiscardDrawn()
}

func (a *GreedyAgent) actPower(obs env.Observation) engine.Action {
	for _, la := range obs.LegalActions {
		switch la.Type {
		case engine.ActionPeekOwn:
			if pos, ok := a.firstUnknownOwnSlot(obs); ok {
				return engine.PeekOwn(pos)
			}
			return engine.SkipPower()

		case engine.ActionPeekOther:
			seat, slot := a.firstOpponentTarget(obs)
			return engine.PeekOther(seat, slot)

		case engine.ActionBlindSwap:
			// Trade the worst known card away, sight unseen.
			if pos, worst, ok := a.worstKnownSlot(obs); ok && float64(worst) > a.unknownValue(obs) {
				seat, slot := a.firstOpponentTarget(obs)
				return engine.BlindSwap(pos, seat, slot)
			}
			return engine.SkipPower()

		case engine.ActionKingPeek:
			seat, slot := a.firstOpponentTarget(obs)
			return engine.KingPeek(seat, slot)
		}
	}
	return engine.SkipPower()
}

func (a *GreedyAgent) actKingDecision(obs env.Observation) engine.Action {
	if obs.KingCard == engine.EmptyCard {
		return engine.SkipPower()
	}
	looked := obs.KingCard.Value()

	if pos, worst, ok := a.worstKnownSlot(obs); ok && looked < worst {
		return engine.KingSwap(pos)
	}
	if pos, ok := a.firstUnknownOwnSlot(obs); ok && float64(looked) < a.unknownValue(obs) {
		return engine.KingSwap(pos)
	}
	return engine.SkipPower()
}
