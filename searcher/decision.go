package searcher

import (
	"fmt"
	"math"

	"github.com/lichensongs/Nash-ISMCTS/game"
)

// decision is a node at which the acting player chooses among public
// actions. children is parallel to actions; p, vc, pure and mixed are
// indexed the same way once the node has expanded.
type decision struct {
	nodeStats
	actions  []game.Action
	children []node
	p        []float64
	v        game.Value
	vc       []game.Interval
	pure     []float64
	mixed    []float64
	nPure    int
	nMixed   int
}

func newDecision(is game.InfoSet, seed game.Interval) *decision {
	return &decision{
		nodeStats: newNodeStats(is, seed),
		actions:   is.LegalActions(),
	}
}

// visit runs one simulation step through this node. The first visit
// expands and ends the simulation; later visits select an action,
// recurse, and then rebuild q from the fresh child values.
func (d *decision) visit(s *search) error {
	d.n++

	if d.terminal {
		return nil
	}

	if d.state == unexpanded {
		return d.expand(s)
	}

	index, err := d.selectAction(s)
	if err != nil {
		return err
	}
	if err := d.children[index].visit(s); err != nil {
		return err
	}

	d.backup()
	return nil
}

// expand evaluates the info set once, seeds q from the returned value,
// and creates one child per legal action. A child whose transition hands
// the turn to another player with hidden information still unresolved
// becomes a sampling node; every other child is a decision node.
func (d *decision) expand(s *search) error {
	if len(d.actions) == 0 {
		return fmt.Errorf("%w: non-terminal decision node for player %d has no legal actions", ErrContractViolation, d.cp)
	}

	eval := s.model.EvaluateActions(d.infoSet)
	if len(eval.P) != len(d.actions) || len(eval.Vc) != len(d.actions) {
		return fmt.Errorf("%w: action eval returned %d priors and %d seeds for %d actions",
			ErrContractViolation, len(eval.P), len(eval.Vc), len(d.actions))
	}

	d.p = eval.P
	d.v = eval.V
	d.vc = eval.Vc
	d.q = game.IntervalOf(d.v)
	d.pure = make([]float64, len(d.actions))
	d.mixed = make([]float64, len(d.actions))
	d.children = make([]node, len(d.actions))

	for i, a := range d.actions {
		seed := d.vc[i]
		if !seed.Valid() {
			return fmt.Errorf("%w: seed interval for action %d has lower > upper", ErrContractViolation, a)
		}

		child := d.infoSet.Apply(a)
		if child.CurrentPlayer() != d.cp && child.HasHiddenInfo() {
			sn, err := newSampling(child, seed)
			if err != nil {
				return fmt.Errorf("expanding action %d: %w", a, err)
			}
			d.children[i] = sn
		} else {
			d.children[i] = newDecision(child, seed)
		}
	}

	d.state = expanded
	return nil
}

// selectAction applies the interval PUCT rule for the acting player. If
// a single action's optimistic score reaches the best pessimistic score
// it is chosen outright (pure case); otherwise one is sampled from the
// prior restricted to the still-plausible candidates (mixed case). The
// matching running distribution absorbs the selection.
func (d *decision) selectAction(s *search) (int, error) {
	sumN := 0
	for _, child := range d.children {
		sumN += child.stats().n
	}
	sqrtN := math.Sqrt(float64(sumN))

	best := -1
	bestLower := math.Inf(-1)
	upper := make([]float64, len(d.children))
	for i, child := range d.children {
		cs := child.stats()
		u := s.params.exploration * d.p[i] * sqrtN / float64(cs.n+1)
		lower := cs.q[d.cp][game.LowerBound] + u
		upper[i] = cs.q[d.cp][game.UpperBound] + u
		if lower > bestLower {
			bestLower = lower
			best = i
		}
	}

	// best itself always qualifies, so candidates is never empty.
	var candidates []int
	for i := range d.children {
		if upper[i] >= bestLower {
			candidates = append(candidates, i)
		}
	}

	if len(candidates) == 1 {
		d.nPure++
		foldOneHot(d.pure, best, d.nPure)
		return best, nil
	}

	mixing, err := d.mixingDistribution(candidates)
	if err != nil {
		return 0, err
	}
	d.nMixed++
	foldDistribution(d.mixed, mixing, d.nMixed)
	return sampleIndex(s.rng, mixing), nil
}

// mixingDistribution restricts this node's own prior to the candidate
// actions and renormalizes. Zero mass over the candidates means the
// prior and the child values disagree about which actions are plausible,
// which is an evaluator bug.
func (d *decision) mixingDistribution(candidates []int) ([]float64, error) {
	mixing := make([]float64, len(d.p))
	total := 0.0
	for _, i := range candidates {
		mixing[i] = d.p[i]
		total += d.p[i]
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: prior mass over the %d candidate actions at player %d node is %g",
			ErrContractViolation, len(candidates), d.cp, total)
	}
	for i := range mixing {
		mixing[i] /= total
	}
	return mixing, nil
}

// backup blends the pure and mixed empirical selection distributions,
// weighted by how often each case occurred, against the children's
// current values. Child q values are re-read fresh on every backup, so
// the whole selection history keeps acting on present estimates.
func (d *decision) backup() {
	total := float64(d.nPure + d.nMixed)
	for p := 0; p < game.NumPlayers; p++ {
		for bound := 0; bound < 2; bound++ {
			ePure := 0.0
			eMixed := 0.0
			for i, child := range d.children {
				q := child.stats().q[p][bound]
				ePure += q * d.pure[i]
				eMixed += q * d.mixed[i]
			}
			d.q[p][bound] = (float64(d.nMixed)*eMixed + float64(d.nPure)*ePure) / total
		}
	}
}

// foldOneHot folds the one-hot distribution on index into a running
// average over n samples.
func foldOneHot(avg []float64, index int, n int) {
	fn := float64(n)
	for i := range avg {
		avg[i] *= (fn - 1) / fn
	}
	avg[index] += 1 / fn
}

// foldDistribution folds sample into a running average over n samples.
func foldDistribution(avg []float64, sample []float64, n int) {
	fn := float64(n)
	for i := range avg {
		avg[i] = (avg[i]*(fn-1) + sample[i]) / fn
	}
}
