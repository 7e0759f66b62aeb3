package core

// UV is a 2D texture coordinate.
type UV struct {
	U, V float64
}

// Intersection describes a single ray-surface hit: the parametric
// distance along the ray, the outward shading normal and the texture
// coordinate at the hit point.
type Intersection struct {
	T      float64
	Normal Direction
	UV     UV
}

// FlipNormal returns the intersection with its normal reversed.
func (i Intersection) FlipNormal() Intersection {
	i.Normal = i.Normal.Negate()
	return i
}

// Interval is a contiguous span of ray parameters inside a solid,
// bounded by an entering and an exiting intersection with
// Enter.T <= Exit.T.
type Interval struct {
	Enter, Exit Intersection
}

// Ordered reports whether the interval endpoints are in ascending
// parameter order.
func (iv Interval) Ordered() bool {
	return iv.Enter.T <= iv.Exit.T
}

// Normalized returns the interval with its endpoints swapped if a
// transform reversed their order.
func (iv Interval) Normalized() Interval {
	if iv.Enter.T > iv.Exit.T {
		iv.Enter, iv.Exit = iv.Exit, iv.Enter
	}
	return iv
}
