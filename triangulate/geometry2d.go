package triangulate

// point2 is a vertex projected into a face's local (u, w) plane frame.
type point2 struct {
	u, w float64
}

// signedArea returns twice the signed area of the polygon pts (positive
// for counter-clockwise winding), the standard shoelace formula.
func signedArea(pts []point2) float64 {
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		sum += a.u*b.w - b.u*a.w
	}
	return sum
}

// cross returns the z-component of (b-a) x (c-a), positive when a,b,c
// turn counter-clockwise.
func cross(a, b, c point2) float64 {
	return (b.u-a.u)*(c.w-a.w) - (b.w-a.w)*(c.u-a.u)
}

// pointInTriangle reports whether p lies in or on the closed triangle
// (a, b, c), assumed counter-clockwise.
func pointInTriangle(p, a, b, c point2) bool {
	d1 := cross(a, b, p)
	d2 := cross(b, c, p)
	d3 := cross(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
