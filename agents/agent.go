// Package agents provides deterministic baseline policies over the
// environment's observation boundary. They exist to exercise the env in
// self-play and benchmarks; none of them learn.
package agents

import (
	"github.com/HannahHughes30/cambio.ai/engine"
	"github.com/HannahHughes30/cambio.ai/env"
)

// Agent maps an observation to one of its legal actions. Act is only
// called when the observation's viewer is the acting seat, so
// LegalActions is always populated.
type Agent interface {
	Act(obs env.Observation) engine.Action
}
