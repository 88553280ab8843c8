package optimizer

import "github.com/SeamusWaldron/cubecore/pkg/notation"

// Report compares a sequence with its optimized form.
type Report struct {
	Moves        []string         `json:"moves"`
	Original     notation.Metrics `json:"original"`
	Optimized    notation.Metrics `json:"optimized"`
	Reduction    int              `json:"reduction"`  // HTM saved
	Efficiency   float64          `json:"efficiency"` // optimized / original HTM
	Unrecognized []string         `json:"unrecognized,omitempty"`
}

// Analyze optimizes tokens and measures both versions. Tokens the grammar
// rejects are listed and left out of the metrics.
func (o *Optimizer) Analyze(tokens []string) Report {
	optimized := o.Optimize(tokens)

	r := Report{Moves: optimized}
	var before []notation.Move
	for _, it := range parseItems(tokens) {
		if it.ok {
			before = append(before, it.move)
		} else {
			r.Unrecognized = append(r.Unrecognized, it.token)
		}
	}
	var after []notation.Move
	for _, it := range parseItems(optimized) {
		if it.ok {
			after = append(after, it.move)
		}
	}

	r.Original = notation.Measure(before)
	r.Optimized = notation.Measure(after)
	r.Reduction = r.Original.HTM - r.Optimized.HTM
	r.Efficiency = 1.0
	if r.Original.HTM > 0 {
		r.Efficiency = float64(r.Optimized.HTM) / float64(r.Original.HTM)
	}
	return r
}
