package game

// The claim game is a one-street bluffing game small enough to verify by
// hand. The dealer (player 0) privately holds a coin showing 0 or 1 and
// announces a claim about it, truthfully or not. The guesser (player 1)
// never sees the coin and either accepts the claim or challenges it.
//
// Scoring, dealer first: accepting a truthful claim is a wash (0, 0);
// accepting a lie rewards the bluff (+1, -1); challenging a truthful
// claim costs the guesser (+1, -1); catching a lie pays the guesser
// (-1, +1).

// NumCoinValues is the number of hidden values in the claim game.
const NumCoinValues = 2

// Dealer actions: claim the coin shows the named value.
const (
	ClaimZero Action = iota
	ClaimOne
)

// Guesser actions.
const (
	Accept Action = iota
	Challenge
)

const unset = -1

// ClaimState is an info set of the claim game. The zero of each field is
// meaningless; construct through NewClaimDeal or NewGuesserView.
type ClaimState struct {
	coin  int // actual coin value, unset while hidden from the acting player
	claim int // unset before the dealer has spoken
	reply int // unset before the guesser has replied
}

// NewClaimDeal returns the dealer's root info set: the coin is known and
// the dealer is to speak.
func NewClaimDeal(coin int) *ClaimState {
	if coin < 0 || coin >= NumCoinValues {
		panic("claim game: coin out of range")
	}
	return &ClaimState{coin: coin, claim: unset, reply: unset}
}

// NewGuesserView returns the guesser's root info set: a claim has been
// made and the coin is hidden.
func NewGuesserView(claim Action) *ClaimState {
	return &ClaimState{coin: unset, claim: int(claim), reply: unset}
}

func (s *ClaimState) CurrentPlayer() Player {
	switch {
	case s.claim == unset:
		return 0
	case s.reply == unset:
		return 1
	default:
		return 0 // game over, the deal passes back
	}
}

func (s *ClaimState) GameOutcome() (Value, bool) {
	if s.reply == unset || s.coin == unset {
		return Value{}, false
	}
	truthful := s.claim == s.coin
	switch {
	case s.reply == int(Accept) && truthful:
		return Value{0, 0}, true
	case s.reply == int(Accept):
		return Value{1, -1}, true
	case truthful:
		return Value{1, -1}, true
	default:
		return Value{-1, 1}, true
	}
}

func (s *ClaimState) HasHiddenInfo() bool {
	return s.coin == unset
}

func (s *ClaimState) LegalActions() []Action {
	switch {
	case s.claim == unset:
		return []Action{ClaimZero, ClaimOne}
	case s.reply == unset:
		return []Action{Accept, Challenge}
	default:
		return nil
	}
}

// HiddenMask admits both coin values: the dealer may bluff, so no claim
// history rules a coin out.
func (s *ClaimState) HiddenMask() []bool {
	return []bool{true, true}
}

func (s *ClaimState) Apply(a Action) InfoSet {
	next := *s
	switch {
	case s.claim == unset:
		next.claim = int(a)
		// The turn passes to the guesser, who does not see the coin.
		next.coin = unset
	case s.reply == unset:
		next.reply = int(a)
	default:
		panic("claim game: apply on a terminal state")
	}
	return &next
}

func (s *ClaimState) Instantiate(h HiddenValue) InfoSet {
	if s.coin != unset {
		panic("claim game: instantiate on a determined state")
	}
	next := *s
	next.coin = int(h)
	return &next
}

// Claim returns the announced claim, if any.
func (s *ClaimState) Claim() (Action, bool) {
	if s.claim == unset {
		return 0, false
	}
	return Action(s.claim), true
}

// Coin returns the coin value, if visible in this info set.
func (s *ClaimState) Coin() (int, bool) {
	if s.coin == unset {
		return 0, false
	}
	return s.coin, true
}

// ClaimModel is a hand-shaded evaluator for the claim game. Trust is the
// prior probability that the dealer told the truth; beliefs over the
// hidden coin lean toward the claimed value by that amount. Action
// priors and values stay at the uniform baseline.
type ClaimModel struct {
	Trust float64
}

func (m ClaimModel) EvaluateActions(is InfoSet) ActionEval {
	return UniformModel{}.EvaluateActions(is)
}

func (m ClaimModel) EvaluateHidden(is InfoSet) HiddenEval {
	cs, ok := is.(*ClaimState)
	if !ok {
		return UniformModel{}.EvaluateHidden(is)
	}
	claim, ok := cs.Claim()
	if !ok {
		return UniformModel{}.EvaluateHidden(is)
	}

	h := make([]float64, NumCoinValues)
	vc := make([]Interval, NumCoinValues)
	for i := range h {
		if Action(i) == claim {
			h[i] = m.Trust
		} else {
			h[i] = (1 - m.Trust) / float64(NumCoinValues-1)
		}
		vc[i] = fullWidthInterval()
	}
	return HiddenEval{H: h, Vc: vc}
}
