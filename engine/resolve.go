package engine

import "fmt"

// Outcome reports what a resolved action did. Revealed is routed to the
// actor's observation only — never broadcast. Discarded is public.
//
// The card fields are always EmptyCard unless the action actually
// produced that card; they never carry omitempty, because Card(0) is a
// real card (A♥) and must survive serialization.
type Outcome struct {
	Actor        uint8     `json:"actor"`
	Drawn        Card      `json:"drawn"`    // actor-only: card taken from the draw pile
	Revealed     Card      `json:"revealed"` // actor-only: card exposed by a peek
	RevealedSeat uint8     `json:"revealedSeat,omitempty"`
	RevealedSlot uint8     `json:"revealedSlot,omitempty"`
	Discarded    Card      `json:"discarded"` // public: card that landed on the discard pile
	PowerOpened  PowerKind `json:"powerOpened,omitempty"`
	Swapped      bool      `json:"swapped,omitempty"`
	CambiaCalled bool      `json:"cambiaCalled,omitempty"`
	Terminal     bool      `json:"terminal,omitempty"`
}

// newOutcome returns an outcome whose card fields all read "no card".
func newOutcome() Outcome {
	return Outcome{Drawn: EmptyCard, Revealed: EmptyCard, Discarded: EmptyCard}
}

// Resolve validates the action against the current phase and actor,
// applies it atomically, appends it to the round log, and returns the
// outcome. On error the state is unchanged and an empty outcome is
// returned — with one exception: a fatal ErrEmptyPile moves the match
// to PhaseAborted before returning.
//
// The resolver never partially applies an action: every target index is
// range-checked before the first mutation.
func (g *GameState) Resolve(a Action) (Outcome, error) {
	if g.Phase.Terminal() {
		return newOutcome(), fmt.Errorf("%w: match is over (%s)", ErrIllegalAction, g.Phase)
	}

	actor := g.ActingSeat()
	var err error
	out := newOutcome()

	switch g.Phase {
	case PhaseAwaitingDraw:
		switch a.Type {
		case ActionDraw:
			out, err = g.resolveDraw(actor)
		case ActionCallCambio:
			out, err = g.resolveCallCambio(actor)
		default:
			err = fmt.Errorf("%w: %s not legal while awaiting draw", ErrIllegalAction, a.Type)
		}

	case PhaseDecidingDrawn:
		switch a.Type {
		case ActionDiscardDrawn:
			out, err = g.resolveDiscardDrawn(actor)
		case ActionSwapDrawn:
			out, err = g.resolveSwapDrawn(actor, a.Slot)
		case ActionCallCambio:
			out, err = g.resolveCallCambio(actor)
		default:
			err = fmt.Errorf("%w: %s not legal while deciding drawn card", ErrIllegalAction, a.Type)
		}

	case PhasePeeking:
		switch {
		case a.Type == ActionPeekOwn && g.Pending.Kind == PowerPeekOwn:
			out, err = g.resolvePeekOwn(actor, a.Slot)
		case a.Type == ActionPeekOther && g.Pending.Kind == PowerPeekOther:
			out, err = g.resolvePeekOther(actor, a.Seat, a.TargetSlot)
		case a.Type == ActionSkipPower:
			out, err = g.resolveSkipPower(actor)
		default:
			err = fmt.Errorf("%w: %s does not resolve a %v peek", ErrIllegalAction, a.Type, g.Pending.Kind)
		}

	case PhaseChoosingSwapTargets:
		switch {
		case a.Type == ActionBlindSwap && g.Pending.Kind == PowerBlindSwap:
			out, err = g.resolveBlindSwap(actor, a.Slot, a.Seat, a.TargetSlot)
		case a.Type == ActionKingPeek && g.Pending.Kind == PowerKingLook:
			out, err = g.resolveKingPeek(actor, a.Seat, a.TargetSlot)
		case a.Type == ActionSkipPower:
			out, err = g.resolveSkipPower(actor)
		default:
			err = fmt.Errorf("%w: %s does not resolve a %v swap", ErrIllegalAction, a.Type, g.Pending.Kind)
		}

	case PhaseKingDecision:
		switch a.Type {
		case ActionKingSwap:
			out, err = g.resolveKingSwap(actor, a.Slot)
		case ActionSkipPower:
			out, err = g.resolveSkipPower(actor)
		default:
			err = fmt.Errorf("%w: %s not legal during king decision", ErrIllegalAction, a.Type)
		}

	default:
		err = fmt.Errorf("%w: unhandled phase %s", ErrIllegalAction, g.Phase)
	}

	if err != nil && !IsFatal(err) {
		return newOutcome(), err
	}

	out.Actor = actor
	out.Terminal = g.Phase.Terminal()
	g.Log = append(g.Log, RoundEntry{
		Turn:    g.TurnNumber,
		Seat:    actor,
		Action:  a,
		Outcome: out,
	})
	return out, err
}

// checkSlot validates an own-hand slot index.
func (g *GameState) checkSlot(slot uint8) error {
	if slot >= HandSize {
		return fmt.Errorf("%w: slot %d out of range", ErrInvalidTarget, slot)
	}
	return nil
}

// checkOtherSeat validates a target seat that must differ from actor,
// plus the slot in that seat's hand.
func (g *GameState) checkOtherSeat(actor, seat, slot uint8) error {
	if seat >= g.SeatCount {
		return fmt.Errorf("%w: seat %d out of range", ErrInvalidTarget, seat)
	}
	if seat == actor {
		return fmt.Errorf("%w: power must target another seat", ErrInvalidTarget)
	}
	return g.checkSlot(slot)
}

func (g *GameState) resolveDraw(actor uint8) (Outcome, error) {
	card, err := g.Deck.DrawCard()
	if err != nil {
		// Both piles exhausted — fatal, distinct from normal game over.
		g.Phase = PhaseAborted
		return newOutcome(), err
	}
	g.Drawn = card
	g.Phase = PhaseDecidingDrawn
	out := newOutcome()
	out.Drawn = card
	return out, nil
}

func (g *GameState) resolveCallCambio(actor uint8) (Outcome, error) {
	if g.IsCambiaCalled() {
		return newOutcome(), fmt.Errorf("%w: seat %d already called", ErrIllegalCall, g.CambiaCaller)
	}
	out := newOutcome()
	// Calling while holding a drawn card sends that card to the discard
	// pile without opening its power: the caller takes no further action.
	if g.Drawn != EmptyCard {
		out.Discarded = g.Drawn
		g.Deck.DiscardCard(g.Drawn)
		g.Drawn = EmptyCard
	}
	g.CambiaCaller = int8(actor)
	// Counts the caller's own turn: endTurn decrements once immediately,
	// leaving exactly SeatCount-1 turns for the other seats.
	g.TurnsLeft = g.SeatCount
	g.endTurn()
	out.CambiaCalled = true
	return out, nil
}

func (g *GameState) resolveDiscardDrawn(actor uint8) (Outcome, error) {
	drawn := g.Drawn
	g.Deck.DiscardCard(drawn)
	g.Drawn = EmptyCard

	out := newOutcome()
	out.Discarded = drawn
	if power := drawn.Power(); power != PowerNone {
		g.Pending = PendingPower{Kind: power, Seat: actor}
		if power == PowerPeekOwn || power == PowerPeekOther {
			g.Phase = PhasePeeking
		} else {
			g.Phase = PhaseChoosingSwapTargets
		}
		out.PowerOpened = power
		return out, nil
	}

	g.endTurn()
	return out, nil
}

func (g *GameState) resolveSwapDrawn(actor, slot uint8) (Outcome, error) {
	if err := g.checkSlot(slot); err != nil {
		return newOutcome(), err
	}
	// The actor saw the drawn card, so its knowledge of the slot is
	// preserved; every other viewer's is cleared.
	displaced := g.Seats[actor].Swap(slot, g.Drawn, int8(actor))
	g.Deck.DiscardCard(displaced)
	g.endTurn()
	out := newOutcome()
	out.Discarded = displaced
	return out, nil
}

func (g *GameState) resolvePeekOwn(actor, slot uint8) (Outcome, error) {
	if err := g.checkSlot(slot); err != nil {
		return newOutcome(), err
	}
	card := g.Seats[actor].Peek(actor, slot)
	g.endTurn()
	out := newOutcome()
	out.Revealed = card
	out.RevealedSeat, out.RevealedSlot = actor, slot
	return out, nil
}

func (g *GameState) resolvePeekOther(actor, seat, slot uint8) (Outcome, error) {
	if err := g.checkOtherSeat(actor, seat, slot); err != nil {
		return newOutcome(), err
	}
	card := g.Seats[seat].Peek(actor, slot)
	g.endTurn()
	out := newOutcome()
	out.Revealed = card
	out.RevealedSeat, out.RevealedSlot = seat, slot
	return out, nil
}

func (g *GameState) resolveBlindSwap(actor, own, seat, slot uint8) (Outcome, error) {
	if err := g.checkSlot(own); err != nil {
		return newOutcome(), err
	}
	if err := g.checkOtherSeat(actor, seat, slot); err != nil {
		return newOutcome(), err
	}
	BlindSwapHands(&g.Seats[actor], own, &g.Seats[seat], slot)
	g.endTurn()
	out := newOutcome()
	out.Swapped = true
	return out, nil
}

func (g *GameState) resolveKingPeek(actor, seat, slot uint8) (Outcome, error) {
	if err := g.checkOtherSeat(actor, seat, slot); err != nil {
		return newOutcome(), err
	}
	card := g.Seats[seat].Peek(actor, slot)
	g.Pending.KingSeat = seat
	g.Pending.KingSlot = slot
	g.Pending.KingCard = card
	g.Phase = PhaseKingDecision
	out := newOutcome()
	out.Revealed = card
	out.RevealedSeat, out.RevealedSlot = seat, slot
	return out, nil
}

func (g *GameState) resolveKingSwap(actor, own uint8) (Outcome, error) {
	if err := g.checkSlot(own); err != nil {
		return newOutcome(), err
	}
	target := g.Pending.KingSeat
	slot := g.Pending.KingSlot

	// Information-preserving swap: the actor saw the target card during
	// the look, so it keeps knowing its own slot's new content. If the
	// actor also knew its outgoing card, it keeps knowing the target
	// slot. Everyone else forgets both slots.
	knewOwn := g.Seats[actor].Knows(actor, own)
	BlindSwapHands(&g.Seats[actor], own, &g.Seats[target], slot)
	g.Seats[actor].Known[actor] = g.Seats[actor].Known[actor].Add(own)
	if knewOwn {
		g.Seats[target].Known[actor] = g.Seats[target].Known[actor].Add(slot)
	}

	g.endTurn()
	out := newOutcome()
	out.Swapped = true
	out.RevealedSeat, out.RevealedSlot = target, slot
	return out, nil
}

func (g *GameState) resolveSkipPower(actor uint8) (Outcome, error) {
	g.endTurn()
	return newOutcome(), nil
}
