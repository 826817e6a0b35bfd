package engine

// LegalActions enumerates the exact legal action set for the acting
// seat in the current phase. The environment exposes it in every
// observation so agents can mask their policy output.
func (g *GameState) LegalActions() []Action {
	switch g.Phase {
	case PhaseAwaitingDraw:
		return g.legalAwaitingDraw()
	case PhaseDecidingDrawn:
		return g.legalDecidingDrawn()
	case PhasePeeking:
		return g.legalPeeking()
	case PhaseChoosingSwapTargets:
		return g.legalChoosingSwapTargets()
	case PhaseKingDecision:
		return g.legalKingDecision()
	default:
		return nil
	}
}

func (g *GameState) legalAwaitingDraw() []Action {
	var actions []Action
	// Drawing is legal whenever a card can be produced, counting the
	// reshuffle of everything under the discard top.
	if g.Deck.DrawLen > 0 || g.Deck.DiscardLen > 1 {
		actions = append(actions, Draw())
	}
	if !g.IsCambiaCalled() {
		actions = append(actions, CallCambio())
	}
	return actions
}

func (g *GameState) legalDecidingDrawn() []Action {
	actions := []Action{DiscardDrawn()}
	for slot := uint8(0); slot < HandSize; slot++ {
		actions = append(actions, SwapDrawn(slot))
	}
	// Cambio may still be declared while holding the drawn card; the
	// card is discarded without its power.
	if !g.IsCambiaCalled() {
		actions = append(actions, CallCambio())
	}
	return actions
}

func (g *GameState) legalPeeking() []Action {
	actor := g.Pending.Seat
	var actions []Action
	switch g.Pending.Kind {
	case PowerPeekOwn:
		for slot := uint8(0); slot < HandSize; slot++ {
			actions = append(actions, PeekOwn(slot))
		}
	case PowerPeekOther:
		for seat := uint8(0); seat < g.SeatCount; seat++ {
			if seat == actor {
				continue
			}
			for slot := uint8(0); slot < HandSize; slot++ {
				actions = append(actions, PeekOther(seat, slot))
			}
		}
	}
	return append(actions, SkipPower())
}

func (g *GameState) legalChoosingSwapTargets() []Action {
	actor := g.Pending.Seat
	var actions []Action
	switch g.Pending.Kind {
	case PowerBlindSwap:
		for own := uint8(0); own < HandSize; own++ {
			for seat := uint8(0); seat < g.SeatCount; seat++ {
				if seat == actor {
					continue
				}
				for slot := uint8(0); slot < HandSize; slot++ {
					actions = append(actions, BlindSwap(own, seat, slot))
				}
			}
		}
	case PowerKingLook:
		for seat := uint8(0); seat < g.SeatCount; seat++ {
			if seat == actor {
				continue
			}
			for slot := uint8(0); slot < HandSize; slot++ {
				actions = append(actions, KingPeek(seat, slot))
			}
		}
	}
	return append(actions, SkipPower())
}

func (g *GameState) legalKingDecision() []Action {
	actions := make([]Action, 0, HandSize+1)
	for own := uint8(0); own < HandSize; own++ {
		actions = append(actions, KingSwap(own))
	}
	return append(actions, SkipPower())
}
