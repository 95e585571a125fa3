// Package experiments measures search throughput and playing strength
// on the claim game: repeated deals between two configured searchers,
// with per-deal records for offline analysis.
package experiments

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"

	"github.com/lichensongs/Nash-ISMCTS/engine"
	"github.com/lichensongs/Nash-ISMCTS/experiments/metrics"
	"github.com/lichensongs/Nash-ISMCTS/game"
	"github.com/lichensongs/Nash-ISMCTS/searcher"
	"github.com/lichensongs/Nash-ISMCTS/searcher/agent"
)

// Config drives one experiment run.
type Config struct {
	Name        string  `yaml:"name"`
	Games       int     `yaml:"games"`
	Simulations int     `yaml:"simulations"`
	Exploration float64 `yaml:"exploration"`
	PhiEpsilon  float64 `yaml:"phi_epsilon"`
	Trust       float64 `yaml:"trust"`
	Seed        uint64  `yaml:"seed"`
	WriteCSV    bool    `yaml:"write_csv"`
}

// DefaultConfig is a short smoke-test run.
func DefaultConfig() Config {
	return Config{
		Name:        "claim-throughput",
		Games:       20,
		Simulations: 400,
		Exploration: searcher.DefaultExploration,
		PhiEpsilon:  searcher.DefaultPhiEpsilon,
		Trust:       0.6,
		Seed:        1,
	}
}

// LoadConfig reads a YAML config, filling omitted fields from the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Games <= 0 || cfg.Simulations < 2 {
		return cfg, fmt.Errorf("config needs at least 1 game and 2 simulations, got %d and %d",
			cfg.Games, cfg.Simulations)
	}
	return cfg, nil
}

// Progress is invoked after every finished deal. May be nil.
type Progress func(done, total int, record metrics.GameRecord)

// Run plays cfg.Games deals, alternating the dealt coin, and returns
// the per-deal records plus the run summary.
func Run(cfg Config, progress Progress) ([]metrics.GameRecord, metrics.SearchMetric, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	collector := metrics.NewCollector()
	collector.Start()

	records := make([]metrics.GameRecord, 0, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		dealer := agent.NewSearchAgent(game.UniformModel{}, cfg.Simulations,
			searcher.WithExploration(cfg.Exploration),
			searcher.WithPhiEpsilon(cfg.PhiEpsilon),
			searcher.WithRand(rand.New(rand.NewSource(rng.Uint64()))))
		guesser := agent.NewSearchAgent(game.ClaimModel{Trust: cfg.Trust}, cfg.Simulations,
			searcher.WithExploration(cfg.Exploration),
			searcher.WithPhiEpsilon(cfg.PhiEpsilon),
			searcher.WithRand(rand.New(rand.NewSource(rng.Uint64()))))

		coin := i % game.NumCoinValues
		start := time.Now()
		outcome, moves, err := engine.New(dealer, guesser).Run(coin)
		if err != nil {
			return records, collector.Complete(), fmt.Errorf("game %d: %w", i+1, err)
		}

		simulations := 0
		for _, m := range moves {
			simulations += m.Simulations
		}
		collector.AddDeal()
		collector.AddSimulations(simulations)

		record := metrics.GameRecord{
			ID:           uuid.NewString(),
			Coin:         coin,
			DealerScore:  outcome[0],
			GuesserScore: outcome[1],
			Simulations:  simulations,
			Duration:     time.Since(start),
		}
		records = append(records, record)
		if progress != nil {
			progress(i+1, cfg.Games, record)
		}
	}

	summary := collector.Complete()
	log.Info().
		Int("deals", summary.Deals).
		Int("simulations", summary.Simulations).
		Dur("duration", summary.Duration).
		Msg("experiment finished")

	if cfg.WriteCSV {
		writer, err := metrics.NewWriter(cfg.Name)
		if err != nil {
			return records, summary, err
		}
		if err := writer.WriteGameRecords(records); err != nil {
			return records, summary, err
		}
	}
	return records, summary, nil
}
