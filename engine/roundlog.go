package engine

// RoundEntry records one resolved action and its outcome.
type RoundEntry struct {
	Turn    uint16  `json:"turn"`
	Seat    uint8   `json:"seat"`
	Action  Action  `json:"action"`
	Outcome Outcome `json:"outcome"`
}

// RoundLog is the ordered, append-only sequence of resolved actions.
// The engine only ever appends; consumers (audit, replay persistence,
// derived observations) read it after any point.
type RoundLog []RoundEntry

// Last returns the most recent entry, or nil if nothing has resolved.
func (l RoundLog) Last() *RoundEntry {
	if len(l) == 0 {
		return nil
	}
	return &l[len(l)-1]
}
