// Package experiments runs self-play batches and stores their results:
// per-game CSV records for quick analysis and packed history files for
// training.
package experiments

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hexathello/agent"
	"hexathello/engine"
	"hexathello/game"
	"hexathello/history"
)

// AgentConfig describes one seat at the table.
type AgentConfig struct {
	ID      string  `yaml:"id"`
	Kind    string  `yaml:"kind"` // "random" or "greedy"
	PRandom float64 `yaml:"p_random"`
}

// Config is one self-play batch. Agents are seated in player order and
// must match the player count.
type Config struct {
	Size          int           `yaml:"size"`
	PlayerCount   int           `yaml:"player_count"`
	Games         int           `yaml:"games"`
	Seed          uint64        `yaml:"seed"`
	OutDir        string        `yaml:"out_dir"`
	SaveHistories bool          `yaml:"save_histories"`
	Agents        []AgentConfig `yaml:"agents"`
}

// GameRecord is one row of the batch summary.
type GameRecord struct {
	ID       int
	Winner   int
	Turns    int
	Scores   []int
	Duration time.Duration
}

func buildAgent(cfg AgentConfig) (agent.Agent, error) {
	switch cfg.Kind {
	case "random":
		return agent.NewRandom(cfg.ID), nil
	case "greedy":
		return agent.NewGreedy(cfg.ID, cfg.PRandom), nil
	default:
		return nil, fmt.Errorf("experiments: unknown agent kind %q", cfg.Kind)
	}
}

// Run plays the configured batch, writes games.csv under OutDir, and,
// when SaveHistories is set, one packed POV history file per game.
func Run(cfg Config) error {
	layout, err := game.NewLayout(cfg.Size, cfg.PlayerCount)
	if err != nil {
		return err
	}
	if len(cfg.Agents) != cfg.PlayerCount {
		return fmt.Errorf("experiments: %d agent configs for %d players",
			len(cfg.Agents), cfg.PlayerCount)
	}
	agents := make([]agent.Agent, len(cfg.Agents))
	for i, ac := range cfg.Agents {
		if agents[i], err = buildAgent(ac); err != nil {
			return err
		}
	}

	writer, err := NewWriter(cfg.OutDir)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	log.Info().Msgf("starting self-play batch: %d games, size %d, %d players...",
		cfg.Games, cfg.Size, cfg.PlayerCount)

	records := make([]GameRecord, 0, cfg.Games)
	for i := 1; i <= cfg.Games; i++ {
		start := time.Now()
		hist, err := engine.Run(layout, agents, rng)
		if err != nil {
			return fmt.Errorf("experiments: game %d: %w", i, err)
		}
		records = append(records, GameRecord{
			ID:       i,
			Winner:   hist.Winner,
			Turns:    len(hist.Rows),
			Scores:   hist.Scores,
			Duration: time.Since(start),
		})

		if cfg.SaveHistories {
			pov, err := history.PovFromLiteral(hist)
			if err != nil {
				return fmt.Errorf("experiments: game %d: %w", i, err)
			}
			packed, err := pov.Pack()
			if err != nil {
				return fmt.Errorf("experiments: game %d: %w", i, err)
			}
			path := filepath.Join(writer.BaseDir(), fmt.Sprintf("game_%04d.json", i))
			if err := packed.WriteFile(path); err != nil {
				return fmt.Errorf("experiments: game %d: %w", i, err)
			}
		}

		log.Info().Msgf("completed game %d of %d: winner %d, %d turns",
			i, cfg.Games, hist.Winner, len(hist.Rows))
	}

	if err := writer.WriteGameRecords(records); err != nil {
		return err
	}
	log.Info().Msgf("completed self-play batch in %s", writer.BaseDir())
	return nil
}
