package game

// NumPlayers is fixed at two. The interval layout and the searcher's
// arithmetic generalize to more players, but nothing has been tuned or
// tested beyond heads-up play.
const NumPlayers = 2

// Player identifies a seat, 0-based.
type Player int

// Action identifies one legal action at a decision point.
type Action int

// HiddenValue identifies one concrete resolution of the currently
// unknown information, e.g. an opponent's private card.
type HiddenValue int

// Value is one scalar outcome estimate per player.
type Value [NumPlayers]float64

// Bound indices into an Interval's per-player pair.
const (
	LowerBound = 0
	UpperBound = 1
)

// Interval is a per-player confidence interval on the game outcome: the
// true value lies within [lower, upper] under every resolution of the
// remaining uncertainty.
type Interval [NumPlayers][2]float64

// IntervalOf promotes a scalar-per-player value to the degenerate
// interval with lower = upper = v.
func IntervalOf(v Value) Interval {
	var iv Interval
	for p := 0; p < NumPlayers; p++ {
		iv[p][LowerBound] = v[p]
		iv[p][UpperBound] = v[p]
	}
	return iv
}

// Valid reports whether lower <= upper holds for every player.
func (iv Interval) Valid() bool {
	for p := 0; p < NumPlayers; p++ {
		if iv[p][LowerBound] > iv[p][UpperBound] {
			return false
		}
	}
	return true
}
