package engine

import "testing"

func fill(h *Hand, cards ...Card) {
	for i, c := range cards {
		h.Slots[i] = c
	}
}

// TestHandPeek: peeking reveals the card to that viewer only and never
// mutates contents.
func TestHandPeek(t *testing.T) {
	var h Hand
	fill(&h, NewCard(SuitHearts, RankFive), NewCard(SuitClubs, RankAce),
		NewCard(SuitSpades, RankNine), NewCard(SuitDiamonds, RankTwo))

	got := h.Peek(2, 0)
	if got != NewCard(SuitHearts, RankFive) {
		t.Fatalf("Peek returned %s", got)
	}
	if !h.Knows(2, 0) {
		t.Error("viewer 2 should know slot 0 after peeking")
	}
	for v := uint8(0); v < MaxSeats; v++ {
		if v != 2 && h.Known[v] != 0 {
			t.Errorf("viewer %d gained knowledge from another viewer's peek", v)
		}
	}
	if h.Slots[0] != NewCard(SuitHearts, RankFive) {
		t.Error("peek mutated hand contents")
	}
}

// TestHandSwapClearsKnowledge: swapping a slot invalidates every
// viewer's mask entry for it, except an actor whose rule preserves it.
func TestHandSwapClearsKnowledge(t *testing.T) {
	var h Hand
	fill(&h, NewCard(SuitHearts, RankFive), NewCard(SuitClubs, RankAce), 0, 0)
	h.Peek(0, 0) // owner knows slot 0
	h.Peek(3, 0) // an opponent peeked it too

	incoming := NewCard(SuitSpades, RankKing)
	displaced := h.Swap(0, incoming, 0) // actor seat 0 saw the incoming card

	if displaced != NewCard(SuitHearts, RankFive) {
		t.Fatalf("displaced = %s", displaced)
	}
	if h.Slots[0] != incoming {
		t.Fatalf("slot 0 = %s, want %s", h.Slots[0], incoming)
	}
	if !h.Knows(0, 0) {
		t.Error("actor's knowledge should be preserved on a self-swap")
	}
	if h.Knows(3, 0) {
		t.Error("opponent's stale knowledge must be cleared by the swap")
	}
}

// TestHandSwapNoPreserve: with no preserving actor everyone forgets.
func TestHandSwapNoPreserve(t *testing.T) {
	var h Hand
	fill(&h, NewCard(SuitHearts, RankFive), 0, 0, 0)
	h.Peek(0, 0)
	h.Peek(1, 0)

	h.Swap(0, NewCard(SuitClubs, RankTwo), -1)
	for v := uint8(0); v < MaxSeats; v++ {
		if h.Knows(v, 0) {
			t.Errorf("viewer %d kept knowledge through an anonymous swap", v)
		}
	}
}

// TestBlindSwapDestroysKnowledge documents the chosen rule variant:
// blind swaps never create knowledge — both affected slots become
// unknown to every viewer, including both owners and the actor.
func TestBlindSwapDestroysKnowledge(t *testing.T) {
	var a, b Hand
	fill(&a, NewCard(SuitHearts, RankFive), 0, 0, 0)
	fill(&b, NewCard(SuitClubs, RankNine), 0, 0, 0)
	a.Peek(0, 0) // seat 0 knows its own slot 0
	b.Peek(1, 0) // seat 1 knows its own slot 0
	b.Peek(0, 0) // seat 0 had peeked seat 1's slot 0 earlier

	BlindSwapHands(&a, 0, &b, 0)

	if a.Slots[0] != NewCard(SuitClubs, RankNine) || b.Slots[0] != NewCard(SuitHearts, RankFive) {
		t.Fatal("blind swap did not exchange contents")
	}
	for v := uint8(0); v < MaxSeats; v++ {
		if a.Knows(v, 0) || b.Knows(v, 0) {
			t.Errorf("viewer %d retained knowledge through a blind swap", v)
		}
	}
}

// TestHandValue sums point values over all four slots.
func TestHandValue(t *testing.T) {
	var h Hand
	fill(&h,
		NewCard(SuitHearts, RankKing),  // -1
		NewCard(SuitRedJoker, RankJoker), // 0
		NewCard(SuitClubs, RankTen),    // 10
		NewCard(SuitSpades, RankAce),   // 1
	)
	if got := h.Value(); got != 10 {
		t.Errorf("Value() = %d, want 10", got)
	}
}
