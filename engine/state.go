package engine

// Phase enumerates the turn state machine. A turn runs
// AwaitingDraw → DecidingDrawn → (Peeking | ChoosingSwapTargets
// [→ KingDecision]) → end-of-turn bookkeeping → AwaitingDraw for the
// next seat, until GameOver (or Aborted on a fatal empty-pile error).
type Phase uint8

const (
	PhaseAwaitingDraw Phase = iota
	PhaseDecidingDrawn
	PhasePeeking             // resolving a 7/8 or 9/10 peek power
	PhaseChoosingSwapTargets // resolving a J/Q blind swap or the King look
	PhaseKingDecision        // King looked; deciding whether to swap
	PhaseGameOver
	PhaseAborted // fatal empty-pile state, distinct from GameOver
)

var phaseNames = [...]string{
	"awaiting_draw", "deciding_drawn", "peeking", "choosing_swap_targets",
	"king_decision", "game_over", "aborted",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Terminal reports whether no further action is possible.
func (p Phase) Terminal() bool { return p == PhaseGameOver || p == PhaseAborted }

// PendingPower holds the power awaiting resolution and, for the King,
// the looked-at slot carried into the decision step.
type PendingPower struct {
	Kind     PowerKind
	Seat     uint8 // actor who opened the power
	KingSeat uint8 // King only: seat that was peeked
	KingSlot uint8 // King only: slot that was peeked
	KingCard Card  // King only: the card the actor saw
}

// GameState is the complete state of one Cambio match. One instance per
// match; nothing is shared between concurrent matches. It is mutated
// exclusively through Resolve.
type GameState struct {
	Rules     Rules
	Seed      uint64
	SeatCount uint8

	Seats [MaxSeats]Hand
	Deck  Deck

	CurrentSeat uint8
	Phase       Phase
	Drawn       Card // pending drawn card; EmptyCard outside DecidingDrawn
	Pending     PendingPower

	CambiaCaller int8  // -1 until Cambio is called
	TurnsLeft    uint8 // final-round countdown, meaningful once called
	TurnNumber   uint16

	// Log is the append-only record of resolved actions and outcomes,
	// readable at any point for audit and replay. The engine itself
	// performs no I/O with it.
	Log RoundLog
}

// NewGame creates, shuffles, and deals a match. The seed fully
// determines the deal and every later reshuffle. Seat 0 opens.
func NewGame(seed uint64, rules Rules) GameState {
	g := GameState{
		Rules:        rules,
		Seed:         seed,
		SeatCount:    rules.seatCount(),
		CambiaCaller: -1,
		Drawn:        EmptyCard,
	}
	g.Deck = NewDeck(seed, rules.NumJokers)
	g.Deck.Shuffle()
	g.deal()
	return g
}

// deal distributes HandSize cards per seat round-robin, grants each
// owner its initial peeks, and flips the top card to start the discard
// pile.
func (g *GameState) deal() {
	for c := uint8(0); c < HandSize; c++ {
		for s := uint8(0); s < g.SeatCount; s++ {
			g.Deck.DrawLen--
			g.Seats[s].Slots[c] = g.Deck.Draw[g.Deck.DrawLen]
		}
	}

	peeks := g.Rules.InitialPeeks
	if peeks > HandSize {
		peeks = HandSize
	}
	for s := uint8(0); s < g.SeatCount; s++ {
		for c := uint8(0); c < peeks; c++ {
			g.Seats[s].Known[s] = g.Seats[s].Known[s].Add(c)
		}
	}

	g.Deck.DrawLen--
	g.Deck.DiscardCard(g.Deck.Draw[g.Deck.DrawLen])
	g.Phase = PhaseAwaitingDraw
}

// CardCount returns the number of cards across piles and hands. It is
// constant for the whole match (conservation invariant).
func (g *GameState) CardCount() int {
	return g.Deck.Size() + int(g.SeatCount)*HandSize
}

// IsTerminal reports whether the match has ended (scored or aborted).
func (g *GameState) IsTerminal() bool { return g.Phase.Terminal() }

// IsCambiaCalled reports whether Cambio has been declared.
func (g *GameState) IsCambiaCalled() bool { return g.CambiaCaller >= 0 }

// ActingSeat returns the seat that must act next. During power
// resolution the power's opener acts regardless of CurrentSeat.
func (g *GameState) ActingSeat() uint8 {
	switch g.Phase {
	case PhasePeeking, PhaseChoosingSwapTargets, PhaseKingDecision:
		return g.Pending.Seat
	default:
		return g.CurrentSeat
	}
}

// nextSeat returns the seat after s in turn order.
func (g *GameState) nextSeat(s uint8) uint8 { return (s + 1) % g.SeatCount }

// endTurn clears per-turn state, advances the seat, runs the
// final-round countdown, and checks termination.
func (g *GameState) endTurn() {
	g.Drawn = EmptyCard
	g.Pending = PendingPower{}
	g.TurnNumber++

	if g.IsCambiaCalled() {
		g.TurnsLeft--
		if g.TurnsLeft == 0 {
			g.Phase = PhaseGameOver
			return
		}
	}
	if g.Rules.MaxTurns > 0 && g.TurnNumber >= g.Rules.MaxTurns {
		g.Phase = PhaseGameOver
		return
	}

	g.CurrentSeat = g.nextSeat(g.CurrentSeat)
	g.Phase = PhaseAwaitingDraw
}
