package agents

import (
	"math/rand"

	"github.com/HannahHughes30/cambio.ai/engine"
	"github.com/HannahHughes30/cambio.ai/env"
)

// RandomAgent picks uniformly among the legal actions. Seeded, so a
// fixed seed gives a reproducible episode.
type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a seeded uniform-random policy.
func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(int64(seed)))}
}

func (a *RandomAgent) Act(obs env.Observation) engine.Action {
	if len(obs.LegalActions) == 0 {
		return engine.SkipPower()
	}
	return obs.LegalActions[a.rng.Intn(len(obs.LegalActions))]
}
