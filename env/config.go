package env

import (
	"fmt"
	"os"
	"strconv"

	"github.com/HannahHughes30/cambio.ai/engine"
)

// Config controls one environment instance. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	Rules engine.Rules

	// IllegalPenalty is the shaping reward returned when an agent plays
	// an action the engine rejects. Zero disables shaping.
	IllegalPenalty float64
}

// DefaultConfig returns the standard 4-seat setup with a small penalty
// for illegal moves.
func DefaultConfig() Config {
	return Config{
		Rules:          engine.DefaultRules(),
		IllegalPenalty: -0.1,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to DefaultConfig for anything unset:
//
//	CAMBIO_SEATS            number of seats (2-6)
//	CAMBIO_JOKERS           jokers in the deck (0-2)
//	CAMBIO_MAX_TURNS        hard turn cap, 0 disables
//	CAMBIO_ILLEGAL_PENALTY  shaping reward for rejected actions
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if err := envUint8("CAMBIO_SEATS", &cfg.Rules.Seats); err != nil {
		return cfg, err
	}
	if err := envUint8("CAMBIO_JOKERS", &cfg.Rules.NumJokers); err != nil {
		return cfg, err
	}
	if v := os.Getenv("CAMBIO_MAX_TURNS"); v != "" {
		n, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return cfg, fmt.Errorf("CAMBIO_MAX_TURNS: %w", err)
		}
		cfg.Rules.MaxTurns = uint16(n)
	}
	if v := os.Getenv("CAMBIO_ILLEGAL_PENALTY"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("CAMBIO_ILLEGAL_PENALTY: %w", err)
		}
		cfg.IllegalPenalty = f
	}
	return cfg, nil
}

func envUint8(key string, dst *uint8) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 8)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = uint8(n)
	return nil
}
