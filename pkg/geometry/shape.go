package geometry

import (
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// Shape reports its nearest intersection with a ray. The rng feeds
// probabilistic shapes such as participating media; deterministic
// shapes ignore it.
type Shape interface {
	Intersect(ray core.Ray, rng *rand.Rand) (core.Intersection, bool)
}

// Solid is a shape with a well-defined interior. Its intersection with
// a ray is a sorted list of disjoint parameter intervals, which may
// extend behind the ray origin.
type Solid interface {
	Shape
	Intervals(ray core.Ray) []core.Interval
}

// DebugChecks enables panics on geometric invariant violations that
// release builds degrade to a miss.
var DebugChecks bool

func violation(msg string) {
	if DebugChecks {
		panic("geometry: " + msg)
	}
}

// NearestFromIntervals resolves an interval list into the single hit a
// ray sees: the entering intersection of the first interval ahead of
// the origin, or the exit when the origin lies inside an interval.
func NearestFromIntervals(intervals []core.Interval) (core.Intersection, bool) {
	for _, iv := range intervals {
		if iv.Enter.T >= 0 {
			return iv.Enter, true
		}
		if iv.Exit.T >= 0 {
			return iv.Exit, true
		}
	}
	return core.Intersection{}, false
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
