package searcher

import (
	"golang.org/x/exp/rand"

	"github.com/lichensongs/Nash-ISMCTS/game"
)

// mockInfoSet is a hand-wired info set: transitions resolve through the
// applied/resolved maps, everything else is canned.
type mockInfoSet struct {
	cp       game.Player
	outcome  *game.Value
	hidden   bool
	actions  []game.Action
	mask     []bool
	applied  map[game.Action]game.InfoSet
	resolved map[game.HiddenValue]game.InfoSet
}

func (m *mockInfoSet) CurrentPlayer() game.Player { return m.cp }

func (m *mockInfoSet) GameOutcome() (game.Value, bool) {
	if m.outcome != nil {
		return *m.outcome, true
	}
	return game.Value{}, false
}

func (m *mockInfoSet) HasHiddenInfo() bool { return m.hidden }

func (m *mockInfoSet) LegalActions() []game.Action { return m.actions }

func (m *mockInfoSet) HiddenMask() []bool { return m.mask }

func (m *mockInfoSet) Apply(a game.Action) game.InfoSet {
	if next, ok := m.applied[a]; ok {
		return next
	}
	return terminalIS(m.cp, game.Value{})
}

func (m *mockInfoSet) Instantiate(h game.HiddenValue) game.InfoSet {
	if next, ok := m.resolved[h]; ok {
		return next
	}
	return terminalIS(m.cp, game.Value{})
}

// terminalIS returns an ended info set with the given outcome.
func terminalIS(cp game.Player, outcome game.Value) *mockInfoSet {
	return &mockInfoSet{cp: cp, outcome: &outcome}
}

// mockModel returns canned evaluations and counts calls.
type mockModel struct {
	actionEval  game.ActionEval
	hiddenEval  game.HiddenEval
	actionCalls int
	hiddenCalls int
}

func (m *mockModel) EvaluateActions(game.InfoSet) game.ActionEval {
	m.actionCalls++
	return m.actionEval
}

func (m *mockModel) EvaluateHidden(game.InfoSet) game.HiddenEval {
	m.hiddenCalls++
	return m.hiddenEval
}

// interval builds [lower, upper] shared by both players.
func interval(lower, upper float64) game.Interval {
	var iv game.Interval
	for p := 0; p < game.NumPlayers; p++ {
		iv[p][game.LowerBound] = lower
		iv[p][game.UpperBound] = upper
	}
	return iv
}

func degenerate(v float64) game.Interval {
	return interval(v, v)
}

// newTestSearch builds a search context with a fixed seed.
func newTestSearch(model game.Model, seed uint64) *search {
	return &search{
		model: model,
		rng:   rand.New(rand.NewSource(seed)),
		params: params{
			exploration: DefaultExploration,
			phiEps:      DefaultPhiEpsilon,
		},
	}
}
