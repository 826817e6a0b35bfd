package engine

// ActionType enumerates the closed set of agent decisions. Keeping the
// set closed and statically enumerable is what makes an RL action space
// definable over it; the resolver dispatches on it exhaustively.
type ActionType uint8

const (
	// ActionDraw takes the top card of the draw pile.
	ActionDraw ActionType = iota
	// ActionDiscardDrawn sends the drawn card to the discard pile,
	// opening its power if it has one.
	ActionDiscardDrawn
	// ActionSwapDrawn swaps the drawn card into own slot Slot,
	// discarding the displaced card.
	ActionSwapDrawn
	// ActionCallCambio declares Cambio. Legal before drawing, or while
	// holding a drawn card (which is discarded without its power).
	ActionCallCambio
	// ActionPeekOwn peeks own slot Slot (7/8 power).
	ActionPeekOwn
	// ActionPeekOther peeks Seat's slot TargetSlot (9/10 power).
	ActionPeekOther
	// ActionBlindSwap exchanges own slot Slot with Seat's slot
	// TargetSlot, sight unseen (J/Q power).
	ActionBlindSwap
	// ActionKingPeek peeks Seat's slot TargetSlot as the first step of
	// the King power.
	ActionKingPeek
	// ActionKingSwap swaps the King-peeked card into own slot Slot.
	ActionKingSwap
	// ActionSkipPower declines the pending power (or the King swap).
	ActionSkipPower

	numActionTypes
)

var actionNames = [...]string{
	"draw", "discard_drawn", "swap_drawn", "call_cambio",
	"peek_own", "peek_other", "blind_swap", "king_peek", "king_swap",
	"skip_power",
}

func (t ActionType) String() string {
	if int(t) < len(actionNames) {
		return actionNames[t]
	}
	return "unknown"
}

// Action is the tagged variant fed to the resolver. Field meaning
// depends on Type: Slot is always an own hand slot, Seat/TargetSlot
// address another seat's hand. Unused fields are zero.
type Action struct {
	Type       ActionType `json:"type"`
	Slot       uint8      `json:"slot,omitempty"`
	Seat       uint8      `json:"seat,omitempty"`
	TargetSlot uint8      `json:"targetSlot,omitempty"`
}

// Constructors for each variant, so call sites never fill the wrong field.

func Draw() Action              { return Action{Type: ActionDraw} }
func DiscardDrawn() Action      { return Action{Type: ActionDiscardDrawn} }
func SwapDrawn(slot uint8) Action { return Action{Type: ActionSwapDrawn, Slot: slot} }
func CallCambio() Action        { return Action{Type: ActionCallCambio} }
func PeekOwn(slot uint8) Action { return Action{Type: ActionPeekOwn, Slot: slot} }
func PeekOther(seat, slot uint8) Action {
	return Action{Type: ActionPeekOther, Seat: seat, TargetSlot: slot}
}
func BlindSwap(own, seat, slot uint8) Action {
	return Action{Type: ActionBlindSwap, Slot: own, Seat: seat, TargetSlot: slot}
}
func KingPeek(seat, slot uint8) Action {
	return Action{Type: ActionKingPeek, Seat: seat, TargetSlot: slot}
}
func KingSwap(own uint8) Action { return Action{Type: ActionKingSwap, Slot: own} }
func SkipPower() Action         { return Action{Type: ActionSkipPower} }
