package geom

// BBox is an axis-aligned bounding box. A zero-value BBox is empty; use
// EmptyBBox or Extend to build one up incrementally.
type BBox struct {
	Min, Max Vec3
	valid    bool
}

// EmptyBBox returns a BBox with no extent, ready to be grown with Extend.
func EmptyBBox() BBox { return BBox{} }

// Valid reports whether the box has absorbed at least one point.
func (b BBox) Valid() bool { return b.valid }

// Extend grows the box to include v, returning the updated box.
func (b BBox) Extend(v Vec3) BBox {
	if !b.valid {
		return BBox{Min: v, Max: v, valid: true}
	}
	return BBox{
		Min: Vec3{X: min(b.Min.X, v.X), Y: min(b.Min.Y, v.Y), Z: min(b.Min.Z, v.Z)},
		Max: Vec3{X: max(b.Max.X, v.X), Y: max(b.Max.Y, v.Y), Z: max(b.Max.Z, v.Z)},
		valid: true,
	}
}

// Union returns the smallest box containing both b and o.
func (b BBox) Union(o BBox) BBox {
	if !b.valid {
		return o
	}
	if !o.valid {
		return b
	}
	return b.Extend(o.Min).Extend(o.Max)
}

// Overlaps reports whether b and o intersect, within tol on every axis.
func (b BBox) Overlaps(o BBox, tol float64) bool {
	if !b.valid || !o.valid {
		return false
	}
	return b.Min.X-tol <= o.Max.X && o.Min.X-tol <= b.Max.X &&
		b.Min.Y-tol <= o.Max.Y && o.Min.Y-tol <= b.Max.Y &&
		b.Min.Z-tol <= o.Max.Z && o.Min.Z-tol <= b.Max.Z
}

// Contains reports whether o lies entirely within b, within tol.
func (b BBox) Contains(o BBox, tol float64) bool {
	if !b.valid || !o.valid {
		return false
	}
	return o.Min.X >= b.Min.X-tol && o.Max.X <= b.Max.X+tol &&
		o.Min.Y >= b.Min.Y-tol && o.Max.Y <= b.Max.Y+tol &&
		o.Min.Z >= b.Min.Z-tol && o.Max.Z <= b.Max.Z+tol
}

// Volume returns the box's volume (0 for an empty or degenerate box).
func (b BBox) Volume() float64 {
	if !b.valid {
		return 0
	}
	d := b.Max.Sub(b.Min)
	if d.X < 0 || d.Y < 0 || d.Z < 0 {
		return 0
	}
	return d.X * d.Y * d.Z
}

// Pad grows b by amount on every axis in both directions. An invalid
// box is returned unchanged.
func (b BBox) Pad(amount float64) BBox {
	if !b.valid {
		return b
	}
	d := Vec3{X: amount, Y: amount, Z: amount}
	return BBox{Min: b.Min.Sub(d), Max: b.Max.Add(d), valid: true}
}

// Centroid returns the box's midpoint.
func (b BBox) Centroid() Vec3 {
	return Vec3{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
