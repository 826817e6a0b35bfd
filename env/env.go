// Package env wraps the engine in a reset/step episode protocol for
// self-play and training loops. Each Env owns exactly one match at a
// time; concurrent matches use one Env per goroutine.
package env

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/HannahHughes30/cambio.ai/engine"
)

// StepInfo carries the side-channel data of one Step: the rejection tag
// for illegal actions, the engine outcome for legal ones, and the final
// standings once the episode ends.
type StepInfo struct {
	ErrorTag  string          `json:"errorTag,omitempty"`
	Outcome   *engine.Outcome `json:"outcome,omitempty"`
	Scores    []int           `json:"scores,omitempty"`
	Winners   []uint8         `json:"winners,omitempty"`
	Utilities []float64       `json:"utilities,omitempty"`
}

// Env is a single-match episode environment. It is not safe for
// concurrent use; run one Env per goroutine.
type Env struct {
	cfg  Config
	log  logrus.FieldLogger
	id   uuid.UUID
	game engine.GameState
	live bool
}

// New creates an environment. A nil logger discards all output.
func New(cfg Config, log logrus.FieldLogger) *Env {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Env{cfg: cfg, log: log}
}

// EpisodeID identifies the current episode; uuid.Nil before first Reset.
func (e *Env) EpisodeID() uuid.UUID { return e.id }

// Game exposes the underlying match state read-only; mutating it
// outside Step breaks the episode invariants.
func (e *Env) Game() *engine.GameState { return &e.game }

// Reset starts a fresh episode from the given seed and returns the
// opening seat's observation. Resetting mid-episode abandons the
// running match.
func (e *Env) Reset(seed uint64) Observation {
	e.id = uuid.New()
	e.game = engine.NewGame(seed, e.cfg.Rules)
	e.live = true
	e.log.WithFields(logrus.Fields{
		"episode": e.id,
		"seed":    seed,
		"seats":   e.game.SeatCount,
	}).Info("episode started")
	return e.Observe(e.game.ActingSeat())
}

// Observe builds the filtered view for an arbitrary seat — the training
// loop calls this to fan one transition out to every learner.
func (e *Env) Observe(viewer uint8) Observation {
	return observe(e.id, &e.game, viewer)
}

// Step applies one action for the acting seat.
//
// A rejected action leaves the match untouched and returns the same
// seat's observation, the configured shaping penalty, done=false, and
// the rejection tag in info. A legal action advances the match and
// returns the next acting seat's observation; when the episode ends,
// reward is the acting seat's utility and info carries the standings.
func (e *Env) Step(a engine.Action) (Observation, float64, bool, *StepInfo) {
	if !e.live {
		return Observation{}, 0, true, &StepInfo{ErrorTag: engine.ErrorTag(engine.ErrIllegalAction)}
	}

	actor := e.game.ActingSeat()
	out, err := e.game.Resolve(a)
	if err != nil {
		if engine.IsFatal(err) {
			return e.finish(actor, &out)
		}
		e.log.WithFields(logrus.Fields{
			"episode": e.id,
			"seat":    actor,
			"action":  a.Type.String(),
			"reason":  engine.ErrorTag(err),
		}).Debug("action rejected")
		return e.Observe(actor), e.cfg.IllegalPenalty, false, &StepInfo{ErrorTag: engine.ErrorTag(err)}
	}

	if e.game.IsTerminal() {
		return e.finish(actor, &out)
	}
	next := e.game.ActingSeat()
	return e.Observe(next), 0, false, &StepInfo{Outcome: &out}
}

// finish closes the episode, logs the result, and packages standings.
// Aborted matches yield zero utilities for everyone.
func (e *Env) finish(actor uint8, out *engine.Outcome) (Observation, float64, bool, *StepInfo) {
	e.live = false
	info := &StepInfo{
		Outcome:   out,
		Scores:    e.game.Scores(),
		Winners:   e.game.Winners(),
		Utilities: e.game.Utilities(),
	}
	e.log.WithFields(logrus.Fields{
		"episode": e.id,
		"phase":   e.game.Phase.String(),
		"turns":   e.game.TurnNumber,
		"scores":  info.Scores,
		"winners": info.Winners,
	}).Info("episode finished")
	return e.Observe(actor), info.Utilities[actor], true, info
}
