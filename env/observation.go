package env

import (
	"github.com/google/uuid"

	"github.com/HannahHughes30/cambio.ai/engine"
)

// SlotView is one card slot as seen by a particular viewer. Card is
// only meaningful when Known is true; opaque slots carry
// engine.EmptyCard.
type SlotView struct {
	Known bool        `json:"known"`
	Card  engine.Card `json:"card,omitempty"`
}

// SeatView is one seat's hand as seen by the viewer, plus public
// per-seat facts.
type SeatView struct {
	Seat         uint8                     `json:"seat"`
	Slots        [engine.HandSize]SlotView `json:"slots"`
	CalledCambia bool                      `json:"calledCambia"`
}

// Observation is the complete partially-observable view handed to one
// seat: public state verbatim, private state filtered through that
// seat's knowledge mask. It never leaks face-down card identities the
// viewer has not earned.
type Observation struct {
	EpisodeID  uuid.UUID    `json:"episodeId"`
	Viewer     uint8        `json:"viewer"`
	Phase      engine.Phase `json:"phase"`
	ActingSeat uint8        `json:"actingSeat"`
	TurnNumber uint16       `json:"turnNumber"`

	// Drawn is set only when the viewer is the seat currently holding a
	// drawn card; engine.EmptyCard otherwise.
	Drawn engine.Card `json:"drawn,omitempty"`

	// KingSeat/KingSlot/KingCard describe the slot looked at by the
	// King power, populated only for the looking seat during the swap
	// decision. KingCard is engine.EmptyCard otherwise.
	KingSeat uint8       `json:"kingSeat,omitempty"`
	KingSlot uint8       `json:"kingSlot,omitempty"`
	KingCard engine.Card `json:"kingCard,omitempty"`

	DiscardTop   engine.Card `json:"discardTop,omitempty"` // public
	DrawCount    uint8       `json:"drawCount"`
	DiscardCount uint8       `json:"discardCount"`

	Seats        []SeatView      `json:"seats"`
	CambiaCaller int8            `json:"cambiaCaller"` // -1 until called
	TurnsLeft    uint8           `json:"turnsLeft,omitempty"`
	LegalActions []engine.Action `json:"legalActions,omitempty"`
	Done         bool            `json:"done"`
}

// observe builds the filtered view of g for one viewer seat.
func observe(id uuid.UUID, g *engine.GameState, viewer uint8) Observation {
	obs := Observation{
		EpisodeID:    id,
		Viewer:       viewer,
		Phase:        g.Phase,
		ActingSeat:   g.ActingSeat(),
		TurnNumber:   g.TurnNumber,
		Drawn:        engine.EmptyCard,
		DiscardTop:   g.Deck.Top(),
		DrawCount:    g.Deck.DrawLen,
		DiscardCount: g.Deck.DiscardLen,
		CambiaCaller: g.CambiaCaller,
		TurnsLeft:    g.TurnsLeft,
		Done:         g.Phase.Terminal(),
	}

	if g.Phase == engine.PhaseDecidingDrawn && viewer == g.CurrentSeat {
		obs.Drawn = g.Drawn
	}
	obs.KingCard = engine.EmptyCard
	if g.Phase == engine.PhaseKingDecision && viewer == g.Pending.Seat {
		obs.KingSeat = g.Pending.KingSeat
		obs.KingSlot = g.Pending.KingSlot
		obs.KingCard = g.Pending.KingCard
	}

	obs.Seats = make([]SeatView, g.SeatCount)
	for s := uint8(0); s < g.SeatCount; s++ {
		sv := SeatView{
			Seat:         s,
			CalledCambia: g.CambiaCaller == int8(s),
		}
		for slot := uint8(0); slot < engine.HandSize; slot++ {
			if g.Seats[s].Knows(viewer, slot) {
				sv.Slots[slot] = SlotView{Known: true, Card: g.Seats[s].Slots[slot]}
			} else {
				sv.Slots[slot] = SlotView{Card: engine.EmptyCard}
			}
		}
		obs.Seats[s] = sv
	}

	if viewer == obs.ActingSeat && !obs.Done {
		obs.LegalActions = g.LegalActions()
	}
	return obs
}
