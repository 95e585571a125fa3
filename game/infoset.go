package game

// InfoSet is the game as perceived by one player: everything public plus
// whatever that player privately knows, abstracting away information
// hidden from them.
//
// InfoSet values are immutable. Apply and Instantiate return new
// instances; the searcher never mutates one.
type InfoSet interface {
	CurrentPlayer() Player

	// GameOutcome returns the per-player terminal outcome; ok is false
	// until the game has ended.
	GameOutcome() (outcome Value, ok bool)

	// HasHiddenInfo reports whether the info set still carries
	// unresolved hidden information.
	HasHiddenInfo() bool

	// LegalActions returns the ordered legal actions for the current
	// player. The order is the index order of evaluator priors.
	LegalActions() []Action

	// HiddenMask flags, per hidden value, whether that value is
	// consistent with the observed history.
	HiddenMask() []bool

	// Apply plays a public action.
	Apply(a Action) InfoSet

	// Instantiate resolves the hidden information to one concrete value.
	Instantiate(h HiddenValue) InfoSet
}
