// Command cambiosim runs batches of self-play Cambio matches between
// the baseline agents, reports aggregate results, and optionally
// archives every match to a SQLite replay store.
//
// Configuration comes from flags, with env vars (and a .env file, if
// present) as defaults:
//
//	CAMBIO_SEATS, CAMBIO_JOKERS, CAMBIO_MAX_TURNS, CAMBIO_ILLEGAL_PENALTY
//	CAMBIO_MATCHES, CAMBIO_WORKERS, CAMBIO_AGENT, CAMBIO_SEED, CAMBIO_DB
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/HannahHughes30/cambio.ai/agents"
	"github.com/HannahHughes30/cambio.ai/engine"
	"github.com/HannahHughes30/cambio.ai/env"
	"github.com/HannahHughes30/cambio.ai/replay"
)

type options struct {
	matches int
	workers int
	agent   string
	seed    uint64
	dbPath  string
	verbose bool
}

// matchResult is what one worker reports back per finished match.
type matchResult struct {
	seed      uint64
	turns     uint16
	aborted   bool
	scores    []int
	winners   []uint8
	utilities []float64
}

func main() {
	_ = godotenv.Load()

	opts := options{
		matches: envIntDefault("CAMBIO_MATCHES", 100),
		workers: envIntDefault("CAMBIO_WORKERS", 4),
		agent:   envStrDefault("CAMBIO_AGENT", "greedy"),
		seed:    uint64(envIntDefault("CAMBIO_SEED", 1)),
		dbPath:  os.Getenv("CAMBIO_DB"),
	}
	flag.IntVar(&opts.matches, "matches", opts.matches, "number of matches to play")
	flag.IntVar(&opts.workers, "workers", opts.workers, "concurrent matches")
	flag.StringVar(&opts.agent, "agent", opts.agent, "policy: random, greedy, or tracker")
	flag.Uint64Var(&opts.seed, "seed", opts.seed, "base seed; match i plays seed+i")
	flag.StringVar(&opts.dbPath, "db", opts.dbPath, "sqlite replay archive path (empty disables)")
	flag.BoolVar(&opts.verbose, "v", false, "per-episode logging")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(context.Background(), log, opts); err != nil {
		log.WithError(err).Fatal("simulation failed")
	}
}

func run(ctx context.Context, log *logrus.Logger, opts options) error {
	cfg, err := env.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := newAgent(opts.agent, 0); err != nil {
		return err
	}

	var store *replay.Store
	if opts.dbPath != "" {
		store, err = replay.Open(ctx, opts.dbPath)
		if err != nil {
			return fmt.Errorf("open replay store: %w", err)
		}
		defer store.Close()
	}

	log.WithFields(logrus.Fields{
		"matches": opts.matches,
		"workers": opts.workers,
		"agent":   opts.agent,
		"seats":   cfg.Rules.Seats,
	}).Info("starting simulation")

	workers := opts.workers
	if workers < 1 {
		workers = 1
	}
	seeds := make(chan uint64)
	results := make(chan matchResult)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			episodeLog := log
			if !opts.verbose {
				episodeLog = nil
			}
			e := env.New(cfg, wrapLogger(episodeLog))
			for seed := range seeds {
				res, rec := playMatch(e, opts.agent, seed)
				if store != nil {
					if err := store.Save(ctx, rec); err != nil {
						log.WithError(err).WithField("seed", seed).Warn("archive failed")
					}
				}
				results <- res
			}
		}()
	}

	go func() {
		for i := 0; i < opts.matches; i++ {
			seeds <- opts.seed + uint64(i)
		}
		close(seeds)
		wg.Wait()
		close(results)
	}()

	report(log, cfg, collect(results))
	return nil
}

// playMatch drives one full episode with a fresh policy per seat.
func playMatch(e *env.Env, agentName string, seed uint64) (matchResult, replay.MatchRecord) {
	policies := make([]agents.Agent, engine.MaxSeats)
	for s := range policies {
		// Seed spread keeps seats decorrelated within one match.
		policies[s], _ = newAgent(agentName, seed*engine.MaxSeats+uint64(s))
	}

	obs := e.Reset(seed)
	var info *env.StepInfo
	done := false
	for steps := 0; !done && steps < 100000; steps++ {
		a := policies[obs.Viewer].Act(obs)
		obs, _, done, info = e.Step(a)
	}

	res := matchResult{seed: seed, turns: e.Game().TurnNumber}
	if info != nil {
		res.scores = info.Scores
		res.winners = info.Winners
		res.utilities = info.Utilities
	}
	res.aborted = e.Game().Phase == engine.PhaseAborted
	return res, replay.RecordOf(e.EpisodeID(), e.Game())
}

func newAgent(name string, seed uint64) (agents.Agent, error) {
	switch name {
	case "random":
		return agents.NewRandomAgent(seed), nil
	case "greedy":
		return agents.NewGreedyAgent(), nil
	case "tracker":
		return agents.NewTrackingAgent(), nil
	default:
		return nil, fmt.Errorf("unknown agent %q (want random, greedy, or tracker)", name)
	}
}

type aggregate struct {
	played    int
	aborted   int
	turnTotal uint64
	seatWins  [engine.MaxSeats]int
	utilSum   [engine.MaxSeats]float64
}

func collect(results <-chan matchResult) aggregate {
	var agg aggregate
	for res := range results {
		agg.played++
		agg.turnTotal += uint64(res.turns)
		if res.aborted {
			agg.aborted++
			continue
		}
		for _, w := range res.winners {
			agg.seatWins[w]++
		}
		for s, u := range res.utilities {
			agg.utilSum[s] += u
		}
	}
	return agg
}

func report(log *logrus.Logger, cfg env.Config, agg aggregate) {
	if agg.played == 0 {
		log.Warn("no matches played")
		return
	}
	fields := logrus.Fields{
		"played":    agg.played,
		"aborted":   agg.aborted,
		"avg_turns": float64(agg.turnTotal) / float64(agg.played),
	}
	for s := uint8(0); s < cfg.Rules.Seats; s++ {
		fields[fmt.Sprintf("seat%d_wins", s)] = agg.seatWins[s]
		fields[fmt.Sprintf("seat%d_util", s)] = agg.utilSum[s] / float64(agg.played)
	}
	log.WithFields(fields).Info("simulation finished")
}

// wrapLogger adapts *logrus.Logger (possibly nil) to the env's field
// logger without giving nil a type.
func wrapLogger(l *logrus.Logger) logrus.FieldLogger {
	if l == nil {
		return nil
	}
	return l
}

func envIntDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envStrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
