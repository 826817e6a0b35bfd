package engine

const (
	// MaxSeats bounds the number of seats an engine state can hold.
	MaxSeats = 6

	// HandSize is fixed: every seat holds exactly four slots for the
	// whole match. Slot indices are stable across swaps, which is what
	// keeps the knowledge masks valid.
	HandSize = 4
)

// SlotSet is a bitmask over the four hand slots.
type SlotSet uint8

// Has reports whether slot is in the set.
func (s SlotSet) Has(slot uint8) bool { return s&(1<<slot) != 0 }

// Add returns the set with slot included.
func (s SlotSet) Add(slot uint8) SlotSet { return s | (1 << slot) }

// Remove returns the set without slot.
func (s SlotSet) Remove(slot uint8) SlotSet { return s &^ (1 << slot) }

// Count returns the number of slots in the set.
func (s SlotSet) Count() int {
	n := 0
	for i := uint8(0); i < HandSize; i++ {
		if s.Has(i) {
			n++
		}
	}
	return n
}

// Hand is one seat's four card slots plus the per-viewer knowledge
// masks. Known[v] records which of THIS hand's slots viewer v currently
// believes it knows the content of — a per-viewer mask, not global: the
// owner may know different slots than an opponent who peeked.
//
// A slot never becomes known to a viewer except through an explicit
// reveal (initial peek, peek power, king look, or a self-swap with a
// card the actor already saw). Mutating a slot clears every viewer's
// knowledge of it unless the specific power preserves the actor's.
type Hand struct {
	Slots [HandSize]Card
	Known [MaxSeats]SlotSet
}

// Peek returns the card at slot and records that viewer now knows it.
// It never mutates hand contents.
func (h *Hand) Peek(viewer, slot uint8) Card {
	h.Known[viewer] = h.Known[viewer].Add(slot)
	return h.Slots[slot]
}

// Knows reports whether viewer's mask records knowledge of slot.
func (h *Hand) Knows(viewer, slot uint8) bool { return h.Known[viewer].Has(slot) }

// forgetAll clears every viewer's knowledge of slot.
func (h *Hand) forgetAll(slot uint8) {
	for v := range h.Known {
		h.Known[v] = h.Known[v].Remove(slot)
	}
}

// Swap replaces the slot's content with card and returns the displaced
// card. Every viewer's knowledge of the slot is cleared; if
// actorKnows >= 0, that seat performed an information-preserving action
// (it saw the incoming card) and its mask is set instead.
func (h *Hand) Swap(slot uint8, card Card, actorKnows int8) Card {
	displaced := h.Slots[slot]
	h.Slots[slot] = card
	h.forgetAll(slot)
	if actorKnows >= 0 {
		h.Known[actorKnows] = h.Known[actorKnows].Add(slot)
	}
	return displaced
}

// BlindSwapHands exchanges a.Slots[slotA] with b.Slots[slotB] without
// revealing either card. Rule variant (documented in a test): blind
// swaps never create knowledge — both slots become unknown to every
// viewer, including both owners and the actor.
func BlindSwapHands(a *Hand, slotA uint8, b *Hand, slotB uint8) {
	a.Slots[slotA], b.Slots[slotB] = b.Slots[slotB], a.Slots[slotA]
	a.forgetAll(slotA)
	b.forgetAll(slotB)
}

// Value returns the hand's total point value.
func (h *Hand) Value() int {
	total := 0
	for _, c := range h.Slots {
		total += int(c.Value())
	}
	return total
}
