package engine

import (
	"encoding/json"
	"errors"
	"testing"
)

func newTestGame(seats uint8) GameState {
	rules := DefaultRules()
	rules.Seats = seats
	return NewGame(99, rules)
}

// forceDrawn puts the game into DecidingDrawn with a chosen card, as if
// the acting seat had just drawn it.
func forceDrawn(g *GameState, c Card) {
	g.Phase = PhaseDecidingDrawn
	g.Drawn = c
}

// TestDealShape: four slots per seat, initial peeks for owners only,
// one flipped discard, conservation, seat 0 to act.
func TestDealShape(t *testing.T) {
	g := newTestGame(4)

	if g.Phase != PhaseAwaitingDraw {
		t.Fatalf("phase = %s, want awaiting_draw", g.Phase)
	}
	if g.CurrentSeat != 0 || g.ActingSeat() != 0 {
		t.Errorf("seat 0 should open, got current=%d acting=%d", g.CurrentSeat, g.ActingSeat())
	}
	if g.Deck.DiscardLen != 1 {
		t.Errorf("discard length = %d, want 1", g.Deck.DiscardLen)
	}
	if g.CardCount() != 54 {
		t.Errorf("card count = %d, want 54", g.CardCount())
	}

	for s := uint8(0); s < 4; s++ {
		for v := uint8(0); v < 4; v++ {
			want := SlotSet(0)
			if v == s {
				want = SlotSet(0).Add(0).Add(1)
			}
			if g.Seats[s].Known[v] != want {
				t.Errorf("seat %d viewer %d mask = %b, want %b", s, v, g.Seats[s].Known[v], want)
			}
		}
	}
}

// TestDrawThenSwap: drawing moves to DecidingDrawn; swapping the drawn
// card in discards the displaced card and preserves only the actor's
// knowledge of the slot.
func TestDrawThenSwap(t *testing.T) {
	g := newTestGame(4)

	out, err := g.Resolve(Draw())
	if err != nil {
		t.Fatal(err)
	}
	if g.Phase != PhaseDecidingDrawn {
		t.Fatalf("phase after draw = %s", g.Phase)
	}
	if out.Drawn != g.Drawn || out.Drawn == EmptyCard {
		t.Fatalf("outcome drawn = %s, state drawn = %s", out.Drawn, g.Drawn)
	}

	drawn := g.Drawn
	old := g.Seats[0].Slots[2]
	out, err = g.Resolve(SwapDrawn(2))
	if err != nil {
		t.Fatal(err)
	}
	if g.Seats[0].Slots[2] != drawn {
		t.Error("drawn card should occupy slot 2")
	}
	if out.Discarded != old || g.Deck.Top() != old {
		t.Errorf("displaced card %s should be on the discard top, got %s", old, g.Deck.Top())
	}
	if !g.Seats[0].Knows(0, 2) {
		t.Error("actor should know the slot it swapped into")
	}
	for v := uint8(1); v < 4; v++ {
		if g.Seats[0].Knows(v, 2) {
			t.Errorf("viewer %d should not know seat 0 slot 2 after the swap", v)
		}
	}
	if g.CurrentSeat != 1 || g.Phase != PhaseAwaitingDraw {
		t.Errorf("turn should pass to seat 1, got seat %d phase %s", g.CurrentSeat, g.Phase)
	}
	if g.CardCount() != 54 {
		t.Errorf("card count = %d, want 54", g.CardCount())
	}
}

// TestDiscardDrawnNoPower: a powerless discard ends the turn directly.
func TestDiscardDrawnNoPower(t *testing.T) {
	g := newTestGame(4)
	if _, err := g.Resolve(Draw()); err != nil {
		t.Fatal(err)
	}
	forceDrawn(&g, NewCard(SuitHearts, RankThree))

	out, err := g.Resolve(DiscardDrawn())
	if err != nil {
		t.Fatal(err)
	}
	if out.PowerOpened != PowerNone {
		t.Error("a three must not open a power")
	}
	if g.Deck.Top() != NewCard(SuitHearts, RankThree) {
		t.Errorf("discard top = %s", g.Deck.Top())
	}
	if g.CurrentSeat != 1 || g.Phase != PhaseAwaitingDraw {
		t.Errorf("turn should pass to seat 1, got seat %d phase %s", g.CurrentSeat, g.Phase)
	}
}

// TestRejectionIdempotence: an action outside its legal phase returns
// ErrIllegalAction and leaves the state bit-identical.
func TestRejectionIdempotence(t *testing.T) {
	g := newTestGame(4)
	before := g.StateHash()

	illegal := []Action{
		DiscardDrawn(), SwapDrawn(0), PeekOwn(1), PeekOther(1, 0),
		BlindSwap(0, 1, 0), KingPeek(1, 0), KingSwap(0), SkipPower(),
	}
	for _, a := range illegal {
		if _, err := g.Resolve(a); !errors.Is(err, ErrIllegalAction) {
			t.Errorf("%s: error = %v, want ErrIllegalAction", a.Type, err)
		}
		if g.StateHash() != before {
			t.Fatalf("%s: rejected action mutated state", a.Type)
		}
	}
	if len(g.Log) != 0 {
		t.Error("rejected actions must not be logged")
	}
}

// TestInvalidTargetRejected: out-of-range indices leave state unchanged.
func TestInvalidTargetRejected(t *testing.T) {
	g := newTestGame(4)
	if _, err := g.Resolve(Draw()); err != nil {
		t.Fatal(err)
	}
	before := g.StateHash()

	if _, err := g.Resolve(SwapDrawn(HandSize)); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("error = %v, want ErrInvalidTarget", err)
	}
	if g.StateHash() != before {
		t.Fatal("invalid target mutated state")
	}
}

// TestCambiaFinality: once called, exactly seatCount-1 further turns
// occur before GameOver, whatever those turns contain.
func TestCambiaFinality(t *testing.T) {
	g := newTestGame(4)

	if _, err := g.Resolve(CallCambio()); err != nil {
		t.Fatal(err)
	}
	if g.CambiaCaller != 0 {
		t.Fatalf("caller = %d, want 0", g.CambiaCaller)
	}

	turns := 0
	for !g.IsTerminal() {
		var err error
		switch g.Phase {
		case PhaseAwaitingDraw:
			_, err = g.Resolve(Draw())
		case PhaseDecidingDrawn:
			_, err = g.Resolve(DiscardDrawn())
			turns++
		default:
			_, err = g.Resolve(SkipPower())
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if turns != 3 {
		t.Errorf("final round contained %d turns, want 3", turns)
	}
	if g.Phase != PhaseGameOver {
		t.Errorf("phase = %s, want game_over", g.Phase)
	}
}

// TestDuplicateCambiaCall fails with ErrIllegalCall and changes nothing.
func TestDuplicateCambiaCall(t *testing.T) {
	g := newTestGame(4)
	if _, err := g.Resolve(CallCambio()); err != nil {
		t.Fatal(err)
	}

	before := g.StateHash()
	if _, err := g.Resolve(CallCambio()); !errors.Is(err, ErrIllegalCall) {
		t.Errorf("error = %v, want ErrIllegalCall", err)
	}
	if g.StateHash() != before {
		t.Fatal("duplicate call mutated state")
	}
}

// TestEmptyPileAborts: drawing with both piles exhausted is the one
// fatal error — the match moves to PhaseAborted, distinct from a normal
// GameOver, and scores no winners.
func TestEmptyPileAborts(t *testing.T) {
	g := newTestGame(2)
	g.Deck.DrawLen = 0
	g.Deck.DiscardLen = 1 // only the visible top card — nothing to reshuffle

	_, err := g.Resolve(Draw())
	if !errors.Is(err, ErrEmptyPile) {
		t.Fatalf("error = %v, want ErrEmptyPile", err)
	}
	if g.Phase != PhaseAborted {
		t.Fatalf("phase = %s, want aborted", g.Phase)
	}
	if !g.IsTerminal() {
		t.Error("aborted match must be terminal")
	}
	if g.Winners() != nil {
		t.Error("aborted match must not report winners")
	}
	for _, u := range g.Utilities() {
		if u != 0 {
			t.Error("aborted match must yield zero utilities")
		}
	}
}

// TestActionAfterGameOver is rejected.
func TestActionAfterGameOver(t *testing.T) {
	g := newTestGame(2)
	g.Phase = PhaseGameOver
	if _, err := g.Resolve(Draw()); !errors.Is(err, ErrIllegalAction) {
		t.Errorf("error = %v, want ErrIllegalAction", err)
	}
}

// TestRoundLogAppendOnly: every successful resolution appends exactly
// one entry carrying the action and its outcome.
func TestRoundLogAppendOnly(t *testing.T) {
	g := newTestGame(4)

	if _, err := g.Resolve(Draw()); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Resolve(DiscardDrawn()); err != nil {
		t.Fatal(err)
	}

	// At least the draw and discard; a power discard logs its sub-steps too.
	if len(g.Log) < 2 {
		t.Fatalf("log length = %d, want >= 2", len(g.Log))
	}
	if g.Log[0].Action.Type != ActionDraw || g.Log[0].Seat != 0 {
		t.Errorf("first entry = %+v", g.Log[0])
	}
	if last := g.Log.Last(); last == nil || last.Action.Type != ActionDiscardDrawn {
		t.Errorf("last entry = %+v", last)
	}
}

// TestCambioWhileHoldingDrawn: the call stays legal after drawing; the
// held card goes to the discard pile without opening its power and the
// final round starts immediately.
func TestCambioWhileHoldingDrawn(t *testing.T) {
	g := newTestGame(4)
	if _, err := g.Resolve(Draw()); err != nil {
		t.Fatal(err)
	}
	king := NewCard(SuitSpades, RankKing)
	forceDrawn(&g, king)

	out, err := g.Resolve(CallCambio())
	if err != nil {
		t.Fatal(err)
	}
	if !out.CambiaCalled {
		t.Error("outcome should record the call")
	}
	if out.Discarded != king {
		t.Errorf("discarded = %v, want %v", out.Discarded, king)
	}
	if g.Deck.Top() != king {
		t.Error("the held card must land on the discard pile")
	}
	if g.Phase != PhaseAwaitingDraw {
		t.Fatalf("phase = %s, want awaiting_draw (no power may open)", g.Phase)
	}
	if g.CambiaCaller != 0 {
		t.Errorf("caller = %d, want 0", g.CambiaCaller)
	}
	if g.TurnsLeft != 3 {
		t.Errorf("turns left = %d, want 3", g.TurnsLeft)
	}
	if g.Drawn != EmptyCard {
		t.Error("no card may remain in hand after the call")
	}
}

func TestDuplicateCambioWhileHoldingDrawn(t *testing.T) {
	g := newTestGame(4)
	if _, err := g.Resolve(CallCambio()); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Resolve(Draw()); err != nil {
		t.Fatal(err)
	}
	before := g.StateHash()
	if _, err := g.Resolve(CallCambio()); !errors.Is(err, ErrIllegalCall) {
		t.Fatalf("err = %v, want ErrIllegalCall", err)
	}
	if g.StateHash() != before {
		t.Error("rejected duplicate call must not touch the state")
	}
}

// TestOutcomeCardFieldsExplicit: unset card fields always read
// EmptyCard. Card(0) is the ace of hearts, so a zero-valued field would
// report a card nobody drew, revealed, or discarded.
func TestOutcomeCardFieldsExplicit(t *testing.T) {
	g := newTestGame(4)
	forceDrawn(&g, NewCard(SuitSpades, RankQueen))
	out, err := g.Resolve(DiscardDrawn())
	if err != nil {
		t.Fatal(err)
	}
	if out.Drawn != EmptyCard || out.Revealed != EmptyCard {
		t.Errorf("discard outcome drawn=%v revealed=%v, want no card in either", out.Drawn, out.Revealed)
	}

	out, err = g.Resolve(BlindSwap(0, 1, 0))
	if err != nil {
		t.Fatal(err)
	}
	if out.Drawn != EmptyCard || out.Revealed != EmptyCard || out.Discarded != EmptyCard {
		t.Errorf("blind swap outcome %+v, want no card in any card field", out)
	}
}

// TestOutcomeAceSurvivesJSON: a genuinely produced ace of hearts (packed
// value 0) must round-trip through the serialized round log.
func TestOutcomeAceSurvivesJSON(t *testing.T) {
	ace := NewCard(SuitHearts, RankAce)
	out := newOutcome()
	out.Revealed = ace
	out.RevealedSeat = 2

	raw, err := json.Marshal(RoundEntry{Turn: 3, Seat: 1, Action: PeekOther(2, 0), Outcome: out})
	if err != nil {
		t.Fatal(err)
	}
	var got RoundEntry
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got.Outcome.Revealed != ace {
		t.Errorf("revealed card = %v after round trip, want %v", got.Outcome.Revealed, ace)
	}
	if got.Outcome.Drawn != EmptyCard || got.Outcome.Discarded != EmptyCard {
		t.Error("absent cards must round-trip as EmptyCard, not zero")
	}
}
