package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/lichensongs/Nash-ISMCTS/game"
)

// Tree owns the root decision node and shares (never owns) the model.
// It is single-threaded: one Visit fully completes before the next may
// begin, and concurrent Visits on the same tree require external
// locking.
type Tree struct {
	root *decision
	s    search
}

type Option func(*Tree)

// WithExploration overrides the PUCT exploration constant.
func WithExploration(c float64) Option {
	return func(t *Tree) {
		if c > 0 {
			t.s.params.exploration = c
		}
	}
}

// WithPhiEpsilon overrides the belief-perturbation budget for Phi.
func WithPhiEpsilon(eps float64) Option {
	return func(t *Tree) {
		if eps >= 0 {
			t.s.params.phiEps = eps
		}
	}
}

// WithRand injects the random source used for mixed-case action
// sampling and hidden-value draws. Inject a fixed seed to make a search
// reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(t *Tree) {
		if rng != nil {
			t.s.rng = rng
		}
	}
}

// NewTree roots a search at the given info set. The tree persists across
// Visit calls and only ever grows.
func NewTree(model game.Model, root game.InfoSet, options ...Option) *Tree {
	t := &Tree{
		root: newDecision(root, game.Interval{}),
		s: search{
			model: model,
			rng:   rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
			params: params{
				exploration: DefaultExploration,
				phiEps:      DefaultPhiEpsilon,
			},
		},
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Visit runs one simulation from the root, threading the model, the
// random source, and the hyperparameters down the descent.
func (t *Tree) Visit() error {
	return t.root.visit(&t.s)
}

// RootStats is a read-only snapshot of the root's accumulated
// statistics, the raw material for any downstream action-selection
// policy. Per-action slices are empty until the root has expanded.
type RootStats struct {
	N       int
	Q       game.Interval
	Actions []game.Action
	Visits  []int
	ChildQ  []game.Interval
	Pure    []float64
	Mixed   []float64
}

func (t *Tree) RootStats() RootStats {
	stats := RootStats{
		N:       t.root.n,
		Q:       t.root.q,
		Actions: append([]game.Action(nil), t.root.actions...),
	}
	if t.root.state == unexpanded {
		return stats
	}

	stats.Visits = make([]int, len(t.root.children))
	stats.ChildQ = make([]game.Interval, len(t.root.children))
	for i, child := range t.root.children {
		cs := child.stats()
		stats.Visits[i] = cs.n
		stats.ChildQ[i] = cs.q
	}
	stats.Pure = append([]float64(nil), t.root.pure...)
	stats.Mixed = append([]float64(nil), t.root.mixed...)
	return stats
}
