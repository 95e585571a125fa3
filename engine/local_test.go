package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/lichensongs/Nash-ISMCTS/game"
	"github.com/lichensongs/Nash-ISMCTS/searcher"
	"github.com/lichensongs/Nash-ISMCTS/searcher/agent"
)

func TestEngineRun(t *testing.T) {
	dealer := agent.NewSearchAgent(game.UniformModel{}, 50,
		searcher.WithRand(rand.New(rand.NewSource(1))))
	guesser := agent.NewSearchAgent(game.ClaimModel{Trust: 0.6}, 50,
		searcher.WithRand(rand.New(rand.NewSource(2))))
	e := New(dealer, guesser)

	outcome, moves, err := e.Run(1)

	require.NoError(t, err)
	require.Len(t, moves, 2, "A deal is one claim and one reply")
	require.Equal(t, game.Player(0), moves[0].Player, "The dealer speaks first")
	require.Equal(t, game.Player(1), moves[1].Player, "The guesser replies")
	require.Contains(t, []game.Value{{0, 0}, {1, -1}, {-1, 1}}, outcome,
		"The outcome must be one of the claim game's settlements")
}

func TestEngineRunBothCoins(t *testing.T) {
	for coin := 0; coin < game.NumCoinValues; coin++ {
		dealer := agent.NewSearchAgent(game.UniformModel{}, 30,
			searcher.WithRand(rand.New(rand.NewSource(uint64(coin)+10))))
		guesser := agent.NewSearchAgent(game.UniformModel{}, 30,
			searcher.WithRand(rand.New(rand.NewSource(uint64(coin)+20))))

		_, moves, err := New(dealer, guesser).Run(coin)

		require.NoError(t, err)
		require.Len(t, moves, 2)
	}
}
