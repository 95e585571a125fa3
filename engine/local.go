// Package engine plays out claim-game deals between two search agents.
// It is driver code: the searcher produces statistics, the agents turn
// them into actions, and the engine adjudicates with full knowledge of
// the coin.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lichensongs/Nash-ISMCTS/game"
	"github.com/lichensongs/Nash-ISMCTS/searcher/agent"
)

// Engine owns the two agents, dealer first. The searchers run
// sequentially; each builds a private tree per decision, so no shared
// mutable search state exists between them.
type Engine struct {
	agents [game.NumPlayers]*agent.SearchAgent
}

func New(dealer, guesser *agent.SearchAgent) *Engine {
	return &Engine{agents: [game.NumPlayers]*agent.SearchAgent{dealer, guesser}}
}

// MoveRecord is one decision as the engine saw it.
type MoveRecord struct {
	Player      game.Player
	Action      game.Action
	Simulations int
}

// Run plays a single deal from the dealer's root and returns the
// terminal outcome. Each player searches from their own view of the
// state: the dealer sees the coin, the guesser does not.
func (e *Engine) Run(coin int) (game.Value, []MoveRecord, error) {
	state := game.NewClaimDeal(coin)
	var moves []MoveRecord

	for {
		if outcome, over := e.adjudicate(state, coin); over {
			log.Info().
				Int("coin", coin).
				Float64("dealer", outcome[0]).
				Float64("guesser", outcome[1]).
				Msg("deal finished")
			return outcome, moves, nil
		}

		cp := state.CurrentPlayer()
		view := e.viewFor(state, cp)

		action, stats, err := e.agents[cp].FindAction(view)
		if err != nil {
			return game.Value{}, moves, fmt.Errorf("player %d search: %w", cp, err)
		}

		log.Debug().
			Int("player", int(cp)).
			Int("action", int(action)).
			Int("visits", stats.N).
			Msg("action chosen")

		moves = append(moves, MoveRecord{Player: cp, Action: action, Simulations: stats.N})
		state = state.Apply(action).(*game.ClaimState)
	}
}

// viewFor hides what the acting player must not see.
func (e *Engine) viewFor(state *game.ClaimState, cp game.Player) game.InfoSet {
	if cp == 1 {
		claim, ok := state.Claim()
		if !ok {
			panic("guesser to act before any claim was made")
		}
		return game.NewGuesserView(claim)
	}
	return state
}

// adjudicate resolves the outcome with the engine's full knowledge, even
// when the tracked state hides the coin.
func (e *Engine) adjudicate(state *game.ClaimState, coin int) (game.Value, bool) {
	if outcome, over := state.GameOutcome(); over {
		return outcome, true
	}
	if state.HasHiddenInfo() {
		if len(state.LegalActions()) == 0 {
			return mustOutcome(state.Instantiate(game.HiddenValue(coin))), true
		}
	}
	return game.Value{}, false
}

func mustOutcome(is game.InfoSet) game.Value {
	outcome, over := is.GameOutcome()
	if !over {
		panic("instantiated state is not terminal")
	}
	return outcome
}
