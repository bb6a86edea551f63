package vision

// Circle is a single detected circular shape in continuous frame coordinates:
// pixel (i, j) covers [i, i+1) x [j, j+1), so its center is (i+0.5, j+0.5).
type Circle struct {
	X, Y   float64
	Radius float64
}

// SelectLargest returns the candidate with the largest radius. Ties keep the
// first candidate encountered. The boolean is false when cands is empty.
func SelectLargest(cands []Circle) (Circle, bool) {
	if len(cands) == 0 {
		return Circle{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Radius > best.Radius {
			best = c
		}
	}
	return best, true
}
