package lathe

// Hit is the result of a hit test: the side nearest to the query point, the
// closest point on it, the distance to it and the side parameter there.
type Hit struct {
	Side     Side
	Point    Point
	Distance float64
	T        float64
}

// HitTest returns the side closest to at. Sides are scanned in traversal
// order and only a strictly smaller distance replaces the current best, so
// the first side wins ties. The second result is false only when the
// polyline has no sides.
func (pl *Polyline) HitTest(at Point) (Hit, bool) {
	var best Hit
	found := false
	for _, s := range pl.Sides() {
		q, d, t := s.Nearest(at)
		if !found || d < best.Distance {
			best = Hit{Side: s, Point: q, Distance: d, T: t}
			found = true
		}
	}
	return best, found
}
