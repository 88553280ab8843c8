package notation

// Metrics counts a sequence under the usual turn metrics.
type Metrics struct {
	HTM       int `json:"htm"`       // Half turn metric: every layer turn is 1
	QTM       int `json:"qtm"`       // Quarter turn metric: a double is 2
	STM       int `json:"stm"`       // Slice turn metric: any layer turn is 1
	Rotations int `json:"rotations"` // Whole cube rotations, free in every metric
	Slices    int `json:"slices"`
}

// Measure computes the metrics of a move sequence.
// A slice turn is two outer-face turns in HTM and QTM terms.
func Measure(moves []Move) Metrics {
	var mt Metrics
	for _, m := range moves {
		quarters := 1
		if m.Turns == Double {
			quarters = 2
		}
		switch m.Kind() {
		case KindRotation:
			mt.Rotations++
		case KindSlice:
			mt.Slices++
			mt.HTM += 2
			mt.QTM += 2 * quarters
			mt.STM++
		default:
			mt.HTM++
			mt.QTM += quarters
			mt.STM++
		}
	}
	return mt
}
