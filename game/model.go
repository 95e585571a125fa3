package game

// ActionEval is a model's judgement of a decision point: a prior over
// the legal actions (parallel to InfoSet.LegalActions), a value estimate
// for the position itself, and a seed interval per action for the child
// reached by that action.
type ActionEval struct {
	P  []float64
	V  Value
	Vc []Interval
}

// HiddenEval is a model's judgement of an undetermined position: a
// belief over hidden values (indexed like InfoSet.HiddenMask), a value
// estimate, and a seed interval per hidden value.
type HiddenEval struct {
	H  []float64
	V  Value
	Vc []Interval
}

// Model is the learned evaluator the searcher consults when it expands a
// node. Both methods are pure functions of the info set; the searcher
// calls each at most once per node and caches the result on the node.
// Model calls dominate the cost of a simulation.
type Model interface {
	EvaluateActions(is InfoSet) ActionEval
	EvaluateHidden(is InfoSet) HiddenEval
}

// UniformModel is the no-knowledge baseline: uniform priors and beliefs
// over the legal support, zero values, and full-width child seeds. It
// lets the searcher run before any trained evaluator exists.
type UniformModel struct{}

func (UniformModel) EvaluateActions(is InfoSet) ActionEval {
	actions := is.LegalActions()
	p := make([]float64, len(actions))
	vc := make([]Interval, len(actions))
	for i := range actions {
		p[i] = 1 / float64(len(actions))
		vc[i] = fullWidthInterval()
	}
	return ActionEval{P: p, Vc: vc}
}

func (UniformModel) EvaluateHidden(is InfoSet) HiddenEval {
	mask := is.HiddenMask()
	legal := 0
	for _, ok := range mask {
		if ok {
			legal++
		}
	}
	h := make([]float64, len(mask))
	vc := make([]Interval, len(mask))
	for i, ok := range mask {
		if ok {
			h[i] = 1 / float64(legal)
		}
		vc[i] = fullWidthInterval()
	}
	return HiddenEval{H: h, Vc: vc}
}

// fullWidthInterval spans the whole outcome range [-1, 1].
func fullWidthInterval() Interval {
	var iv Interval
	for p := 0; p < NumPlayers; p++ {
		iv[p][LowerBound] = -1
		iv[p][UpperBound] = 1
	}
	return iv
}
