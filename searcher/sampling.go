package searcher

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lichensongs/Nash-ISMCTS/game"
)

// sampling is a node whose info set carries undetermined hidden
// information. It owns one child per legal hidden value and samples
// among them by the masked belief h. qc keeps the per-hidden-value
// seed intervals collected when the children were created; lastPhi is
// the most recent robustness bound, kept for diagnostics only.
type sampling struct {
	nodeStats
	mask     []bool
	children map[game.HiddenValue]node
	h        []float64
	qc       []game.Interval
	lastPhi  game.Interval
}

func newSampling(is game.InfoSet, seed game.Interval) (*sampling, error) {
	mask := is.HiddenMask()
	legal := false
	for _, ok := range mask {
		if ok {
			legal = true
			break
		}
	}
	if !legal {
		return nil, fmt.Errorf("%w: hidden-value mask at player %d sampling node admits no legal value",
			ErrContractViolation, is.CurrentPlayer())
	}
	return &sampling{
		nodeStats: newNodeStats(is, seed),
		mask:      mask,
		children:  make(map[game.HiddenValue]node),
	}, nil
}

// visit expands on first contact and then, in the same simulation, draws
// a hidden value from the belief and recurses into it. Unlike a decision
// node, expansion does not end the simulation here.
func (sn *sampling) visit(s *search) error {
	sn.n++

	if sn.terminal {
		return nil
	}

	if sn.state == unexpanded {
		if err := sn.expand(s); err != nil {
			return err
		}
	}

	c := game.HiddenValue(sampleIndex(s.rng, sn.h))
	sn.lastPhi = Phi(c, s.params.phiEps, sn.qc, sn.h)
	return sn.children[c].visit(s)
}

// expand evaluates the hidden distribution once, masks and renormalizes
// the belief, and instantiates one child per legal hidden value. A child
// that still carries hidden information must keep the same acting player
// and becomes another sampling node; otherwise it is a decision node.
func (sn *sampling) expand(s *search) error {
	eval := s.model.EvaluateHidden(sn.infoSet)
	if len(eval.H) != len(sn.mask) || len(eval.Vc) != len(sn.mask) {
		return fmt.Errorf("%w: hidden eval returned %d beliefs and %d seeds for %d hidden values",
			ErrContractViolation, len(eval.H), len(eval.Vc), len(sn.mask))
	}

	sn.h = maskBelief(eval.H, sn.mask)
	sn.qc = make([]game.Interval, len(sn.mask))

	for hv, legal := range sn.mask {
		if !legal {
			continue
		}
		seed := eval.Vc[hv]
		if !seed.Valid() {
			return fmt.Errorf("%w: seed interval for hidden value %d has lower > upper", ErrContractViolation, hv)
		}

		resolved := sn.infoSet.Instantiate(game.HiddenValue(hv))
		var child node
		if resolved.HasHiddenInfo() {
			if resolved.CurrentPlayer() != sn.cp {
				return fmt.Errorf("%w: instantiating hidden value %d changed the acting player from %d to %d with hidden info unresolved",
					ErrContractViolation, hv, sn.cp, resolved.CurrentPlayer())
			}
			var err error
			child, err = newSampling(resolved, seed)
			if err != nil {
				return fmt.Errorf("expanding hidden value %d: %w", hv, err)
			}
		} else {
			child = newDecision(resolved, seed)
		}
		sn.children[game.HiddenValue(hv)] = child
		sn.qc[hv] = child.stats().q
	}

	sn.q = game.IntervalOf(eval.V)
	sn.state = expanded
	return nil
}

// maskBelief zeroes illegal entries and renormalizes. A belief that has
// lost essentially all its mass to the mask falls back to uniform over
// the legal values; that is a documented recovery, not an error.
func maskBelief(h []float64, mask []bool) []float64 {
	out := make([]float64, len(h))
	total := 0.0
	legal := 0
	for i, ok := range mask {
		if ok {
			out[i] = h[i]
			total += h[i]
			legal++
		}
	}

	if total < beliefCollapseThreshold {
		log.Warn().Float64("mass", total).Int("legal", legal).
			Msg("belief mass collapsed after masking, falling back to uniform")
		for i, ok := range mask {
			if ok {
				out[i] = 1 / float64(legal)
			} else {
				out[i] = 0
			}
		}
		return out
	}

	for i := range out {
		out[i] /= total
	}
	return out
}
