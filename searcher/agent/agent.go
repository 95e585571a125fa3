// Package agent turns root search statistics into a concrete action.
// The search core deliberately stops at statistics; the policy for
// picking a final move lives here.
package agent

import (
	"fmt"

	"github.com/lichensongs/Nash-ISMCTS/game"
	"github.com/lichensongs/Nash-ISMCTS/searcher"
)

// SearchAgent runs a fixed number of simulations on a fresh tree per
// decision and picks the most-visited root action.
type SearchAgent struct {
	model       game.Model
	simulations int
	options     []searcher.Option
}

func NewSearchAgent(model game.Model, simulations int, options ...searcher.Option) *SearchAgent {
	if simulations < 2 {
		// One simulation only expands the root and leaves no visit
		// statistics to pick from.
		panic("search agent needs at least 2 simulations per decision")
	}
	return &SearchAgent{model: model, simulations: simulations, options: options}
}

// FindAction searches from the given info set and returns the chosen
// action along with the root statistics that produced it.
func (a *SearchAgent) FindAction(is game.InfoSet) (game.Action, searcher.RootStats, error) {
	tree := searcher.NewTree(a.model, is, a.options...)
	for i := 0; i < a.simulations; i++ {
		if err := tree.Visit(); err != nil {
			return 0, searcher.RootStats{}, fmt.Errorf("simulation %d: %w", i+1, err)
		}
	}

	stats := tree.RootStats()
	action, err := MaxVisitAction(stats)
	if err != nil {
		return 0, stats, err
	}
	return action, stats, nil
}

// MaxVisitAction picks the root action with the most visits, breaking
// ties toward the earlier action.
func MaxVisitAction(stats searcher.RootStats) (game.Action, error) {
	if len(stats.Visits) == 0 {
		return 0, fmt.Errorf("root has no visited actions to choose from")
	}

	best := 0
	for i, n := range stats.Visits {
		if n > stats.Visits[best] {
			best = i
		}
	}
	return stats.Actions[best], nil
}
