package geometry

import (
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// The CSG operators combine two solids by set algebra on their ray
// intervals. Child interval lists are sorted by entry and pairwise
// disjoint, and every operator keeps that invariant for its output.

// CSGUnion is the set union of two solids.
type CSGUnion struct {
	A, B Solid
}

// NewCSGUnion creates the union of two solids.
func NewCSGUnion(a, b Solid) *CSGUnion {
	return &CSGUnion{A: a, B: b}
}

// Intersect returns the nearest boundary hit of the union.
func (u *CSGUnion) Intersect(ray core.Ray, rng *rand.Rand) (core.Intersection, bool) {
	return NearestFromIntervals(u.Intervals(ray))
}

// Intervals merges the two sorted streams. Overlapping intervals are
// coalesced into one span that keeps growing while any child interval
// starts before its current end.
func (u *CSGUnion) Intervals(ray core.Ray) []core.Interval {
	a := u.A.Intervals(ray)
	b := u.B.Intervals(ray)
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}

	out := make([]core.Interval, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Exit.T < b[j].Enter.T:
			out = append(out, a[i])
			i++
		case b[j].Exit.T < a[i].Enter.T:
			out = append(out, b[j])
			j++
		default:
			// Overlap: start from the earlier entry, then absorb
			// every child interval that begins inside the span.
			var cur core.Interval
			if a[i].Enter.T <= b[j].Enter.T {
				cur = a[i]
				i++
			} else {
				cur = b[j]
				j++
			}
			for {
				if i < len(a) && a[i].Enter.T <= cur.Exit.T {
					if a[i].Exit.T > cur.Exit.T {
						cur.Exit = a[i].Exit
					}
					i++
					continue
				}
				if j < len(b) && b[j].Enter.T <= cur.Exit.T {
					if b[j].Exit.T > cur.Exit.T {
						cur.Exit = b[j].Exit
					}
					j++
					continue
				}
				break
			}
			out = append(out, cur)
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// CSGIntersection is the set intersection of two solids.
type CSGIntersection struct {
	A, B Solid
}

// NewCSGIntersection creates the intersection of two solids.
func NewCSGIntersection(a, b Solid) *CSGIntersection {
	return &CSGIntersection{A: a, B: b}
}

// Intersect returns the nearest boundary hit of the intersection.
func (s *CSGIntersection) Intersect(ray core.Ray, rng *rand.Rand) (core.Intersection, bool) {
	return NearestFromIntervals(s.Intervals(ray))
}

// Intervals emits the overlapping portion of each interval pair,
// advancing whichever stream ends first.
func (s *CSGIntersection) Intervals(ray core.Ray) []core.Interval {
	a := s.A.Intervals(ray)
	b := s.B.Intervals(ray)

	var out []core.Interval
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		enter := a[i].Enter
		if b[j].Enter.T > enter.T {
			enter = b[j].Enter
		}
		exit := a[i].Exit
		if b[j].Exit.T < exit.T {
			exit = b[j].Exit
		}
		if enter.T <= exit.T {
			out = append(out, core.Interval{Enter: enter, Exit: exit})
		}
		if a[i].Exit.T < b[j].Exit.T {
			i++
		} else {
			j++
		}
	}
	return out
}

// CSGDifference is the set difference A minus B.
type CSGDifference struct {
	A, B Solid
}

// NewCSGDifference creates the difference of two solids.
func NewCSGDifference(a, b Solid) *CSGDifference {
	return &CSGDifference{A: a, B: b}
}

// Intersect returns the nearest boundary hit of the difference.
func (d *CSGDifference) Intersect(ray core.Ray, rng *rand.Rand) (core.Intersection, bool) {
	return NearestFromIntervals(d.Intervals(ray))
}

// Intervals walks A's intervals and carves out every overlapping B
// interval, splitting where needed. Boundaries contributed by B keep
// B's hit point but fly the negated normal: the wall of the removed
// solid faces into the carved cavity.
func (d *CSGDifference) Intervals(ray core.Ray) []core.Interval {
	a := d.A.Intervals(ray)
	if len(a) == 0 {
		return nil
	}
	b := d.B.Intervals(ray)
	if len(b) == 0 {
		return a
	}

	var out []core.Interval
	j := 0
	for _, span := range a {
		cur := span
		alive := true

		// B intervals entirely before this span cannot cut it, or any
		// later span, again.
		for j < len(b) && b[j].Exit.T < cur.Enter.T {
			j++
		}

		for k := j; alive && k < len(b) && b[k].Enter.T <= cur.Exit.T; k++ {
			if b[k].Enter.T > cur.Enter.T {
				out = append(out, core.Interval{Enter: cur.Enter, Exit: b[k].Enter.FlipNormal()})
			}
			if b[k].Exit.T < cur.Exit.T {
				cur.Enter = b[k].Exit.FlipNormal()
			} else {
				alive = false
			}
		}
		if alive {
			out = append(out, cur)
		}
	}
	return out
}
