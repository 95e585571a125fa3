package searcher

import (
	"math"
	"sort"

	"github.com/lichensongs/Nash-ISMCTS/game"
)

// Phi bounds the advantage of the sampled hidden value c over the
// belief-weighted average when an adversary may both shift up to eps of
// probability mass between hidden states and pick each state's value
// anywhere inside its interval. Per player and per bound it extremizes
//
//	q[c] - sum_i h'[i]*q[i]
//
// over beliefs h' within the eps budget of h and values q[i] inside
// qc[i], chosen independently per state. For a fixed value choice the
// objective is linear in h', so the extreme belief is found greedily:
// order the states by the marginal cost of holding their mass and
// water-fill the budget between them, respecting h'[i] in [0, 1].
//
// qc and h are indexed by hidden value; qc entries outside the legal
// support should carry zero intervals and zero belief. The result is a
// diagnostic bound; it feeds back into neither q nor h.
func Phi(c game.HiddenValue, eps float64, qc []game.Interval, h []float64) game.Interval {
	n := len(h)
	var out game.Interval

	for p := 0; p < game.NumPlayers; p++ {
		for bound := 0; bound < 2; bound++ {
			// +1 when pushing the lower bound down, -1 when pushing the
			// upper bound up.
			sign := float64(1 - 2*bound)

			// Adversarial value choice: every state takes the endpoint
			// opposing the bound, the revealed state its own endpoint.
			q := make([]float64, n)
			for i := 0; i < n; i++ {
				q[i] = qc[i][p][1-bound]
			}
			q[c] = qc[c][p][bound]

			// States ordered by the marginal cost of giving them mass.
			order := make([]int, n)
			for i := range order {
				order[i] = i
			}
			sort.SliceStable(order, func(a, b int) bool {
				return -q[order[a]] < -q[order[b]]
			})

			hPrime := append([]float64(nil), h...)
			for _, dir := range []float64{-1, 1} {
				remaining := eps
				for step := 0; step < n && remaining > 0; step++ {
					i := order[step]
					if dir < 0 {
						i = order[n-1-step]
					}
					limit := hPrime[i]
					if dir == sign {
						limit = 1 - hPrime[i]
					}
					move := math.Min(remaining, limit)
					hPrime[i] += sign * dir * move
					remaining -= move
				}
			}

			val := q[c]
			for i := 0; i < n; i++ {
				val -= hPrime[i] * q[i]
			}
			out[p][bound] = val
		}
	}

	return out
}
