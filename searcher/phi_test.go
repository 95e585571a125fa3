package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lichensongs/Nash-ISMCTS/game"
)

func TestPhiZeroEpsilon(t *testing.T) {
	// Without a perturbation budget Phi reduces, per player and bound, to
	// q[c] - sum_i h[i]*q[i] evaluated at the matching endpoints.
	qc := []game.Interval{
		interval(0.2, 0.6),
		interval(-0.4, 0.1),
		interval(-1, 1),
	}
	h := []float64{0.5, 0.3, 0.2}
	c := game.HiddenValue(1)

	got := Phi(c, 0, qc, h)

	for p := 0; p < game.NumPlayers; p++ {
		for bound := 0; bound < 2; bound++ {
			want := qc[c][p][bound]
			for i := range h {
				q := qc[i][p][1-bound]
				if game.HiddenValue(i) == c {
					q = qc[c][p][bound]
				}
				want -= h[i] * q
			}
			require.InDelta(t, want, got[p][bound], 1e-12,
				"Phi with eps = 0 should leave no perturbation freedom")
		}
	}
}

func TestPhiWidensWithEpsilon(t *testing.T) {
	qc := []game.Interval{
		interval(0.1, 0.9),
		interval(-0.6, -0.2),
		interval(-0.3, 0.5),
	}
	h := []float64{0.6, 0.3, 0.1}
	c := game.HiddenValue(0)

	prev := Phi(c, 0, qc, h)
	for _, eps := range []float64{0.01, 0.05, 0.1, 0.3} {
		next := Phi(c, eps, qc, h)
		for p := 0; p < game.NumPlayers; p++ {
			require.LessOrEqual(t, next[p][game.LowerBound], prev[p][game.LowerBound]+1e-12,
				"Growing the budget should never raise the lower bound")
			require.GreaterOrEqual(t, next[p][game.UpperBound], prev[p][game.UpperBound]-1e-12,
				"Growing the budget should never lower the upper bound")
			require.True(t, next.Valid(), "Phi should return a valid interval")
		}
		prev = next
	}
}

func TestPhiHandComputed(t *testing.T) {
	// Two hidden states with point values 1 and 0, even belief, c = 0.
	// The unperturbed advantage is 1 - h[0] = 0.5. With eps = 0.2 the
	// adversary shifts 0.2 of mass onto (or off) state 0, moving the
	// advantage to 1 - 0.7 = 0.3 and 1 - 0.3 = 0.7.
	qc := []game.Interval{degenerate(1), degenerate(0)}
	h := []float64{0.5, 0.5}

	got := Phi(0, 0.2, qc, h)

	for p := 0; p < game.NumPlayers; p++ {
		require.InDelta(t, 0.3, got[p][game.LowerBound], 1e-12)
		require.InDelta(t, 0.7, got[p][game.UpperBound], 1e-12)
	}
}

func TestPhiRevealedStateUsesOwnEndpoint(t *testing.T) {
	// Only state c carries width. Its own endpoint drives the bound for
	// the matching direction while the other states flip endpoints.
	qc := []game.Interval{interval(-0.5, 0.5), degenerate(0.25)}
	h := []float64{0.5, 0.5}

	got := Phi(0, 0, qc, h)

	for p := 0; p < game.NumPlayers; p++ {
		// Lower: q = [-0.5, 0.25], objective -0.5 - (0.5*-0.5 + 0.5*0.25).
		require.InDelta(t, -0.375, got[p][game.LowerBound], 1e-12)
		// Upper: q = [0.5, 0.25], objective 0.5 - (0.5*0.5 + 0.5*0.25).
		require.InDelta(t, 0.125, got[p][game.UpperBound], 1e-12)
	}
}
