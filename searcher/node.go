package searcher

import (
	"errors"

	"golang.org/x/exp/rand"

	"github.com/lichensongs/Nash-ISMCTS/game"
)

// ErrContractViolation flags a broken collaborator contract: an
// evaluator distribution without positive mass over its support, a
// hidden-value mask with no legal value, or a seed interval with
// lower > upper. These are bugs in an external collaborator and always
// surface as errors, never as silently coerced tree state.
var ErrContractViolation = errors.New("contract violation")

// search bundles what every visit needs: the evaluator, the injected
// random source, and the tree's hyperparameters.
type search struct {
	model  game.Model
	rng    *rand.Rand
	params params
}

// node is the closed set of tree node kinds. Exactly *decision and
// *sampling implement it; selection-vs-sampling dispatch happens through
// these two methods and nothing else, so no third kind can sneak in.
type node interface {
	visit(s *search) error
	stats() *nodeStats
}

type expansionState uint8

const (
	unexpanded expansionState = iota
	expanded
)

// nodeStats is the state shared by both node kinds: the owned info set,
// the acting player, the terminal outcome if the game has ended, the
// current interval estimate q, the visit count, and the explicit
// expansion state.
type nodeStats struct {
	infoSet  game.InfoSet
	cp       game.Player
	outcome  game.Value
	terminal bool
	q        game.Interval
	n        int
	state    expansionState
}

// newNodeStats seeds q from the parent's evaluator output; a terminal
// info set instead pins q to the outcome broadcast to both bounds, and
// it never changes again.
func newNodeStats(is game.InfoSet, seed game.Interval) nodeStats {
	ns := nodeStats{infoSet: is, cp: is.CurrentPlayer(), q: seed}
	if outcome, ok := is.GameOutcome(); ok {
		ns.terminal = true
		ns.outcome = outcome
		ns.q = game.IntervalOf(outcome)
	}
	return ns
}

func (ns *nodeStats) stats() *nodeStats { return ns }

// sampleIndex draws an index from a probability vector.
func sampleIndex(rng *rand.Rand, probs []float64) int {
	r := rng.Float64()
	acc := 0.0
	last := 0
	for i, p := range probs {
		if p <= 0 {
			continue
		}
		acc += p
		last = i
		if r < acc {
			return i
		}
	}
	// Floating-point shortfall at the top of the accumulation; the last
	// positive entry absorbs it.
	return last
}
