package searcher

// Search hyperparameters.

// DefaultExploration is the PUCT exploration constant.
const DefaultExploration = 1.0

// DefaultPhiEpsilon is the belief-perturbation budget used for the Phi
// robustness bound on sampling nodes.
const DefaultPhiEpsilon = 0.05

// beliefCollapseThreshold is the masked-belief mass below which the
// belief is replaced by the uniform distribution over legal values.
const beliefCollapseThreshold = 1e-6

type params struct {
	exploration float64
	phiEps      float64
}
