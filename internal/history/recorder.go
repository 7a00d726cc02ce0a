package history

import "github.com/archer884/roll/internal/dice"

// Recorder wraps a dice.Source and observes every raw draw, including
// draws later replaced by a reroll. Draws are grouped by die size (the max
// bound of the request) for the history log.
type Recorder struct {
	src   dice.Source
	draws map[int][]int
}

// NewRecorder wraps src.
func NewRecorder(src dice.Source) *Recorder {
	return &Recorder{src: src, draws: make(map[int][]int)}
}

// Next draws from the wrapped source and records the value on success.
func (r *Recorder) Next(min, max int) (int, error) {
	value, err := r.src.Next(min, max)
	if err != nil {
		return 0, err
	}
	r.draws[max] = append(r.draws[max], value)
	return value, nil
}

// Draws returns everything recorded so far, keyed by die size.
func (r *Recorder) Draws() map[int][]int {
	return r.draws
}
