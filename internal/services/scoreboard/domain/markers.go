package domain

// MaxMarkers is the most chickpea markers a single quarter displays.
const MaxMarkers = 5

// Markers returns how many chickpea markers quarter q shows for its team's
// round score. Five-point quarters count whole fives; single-point quarters
// count the remainder.
func Markers(state State, q Quarter) (int, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	score := state.Score[q.Team()]
	if score <= 0 {
		return 0, nil
	}
	if q.IsSinglePoint() {
		return score % PointValueFive, nil
	}
	return min(score/PointValueFive, MaxMarkers), nil
}
