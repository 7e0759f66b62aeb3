package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-solid-raytracer/pkg/algebra"
	"github.com/df07/go-solid-raytracer/pkg/core"
)

// Torus is a solid torus around the Z axis, centered at the origin.
// Major is the radius from the center to the middle of the tube, Minor
// the radius of the tube itself.
type Torus struct {
	Major float64
	Minor float64
}

// NewTorus creates a torus.
func NewTorus(major, minor float64) *Torus {
	return &Torus{Major: major, Minor: minor}
}

// Intersect returns the nearest boundary hit.
func (s *Torus) Intersect(ray core.Ray, rng *rand.Rand) (core.Intersection, bool) {
	return NearestFromIntervals(s.Intervals(ray))
}

// Intervals solves the quartic from the implicit surface
// (x²+y²+z²+R²−S²)² = 4R²(x²+y²). Even root counts pair consecutive
// roots; three roots are paired by entering/leaving facing, with the
// tangency left as a degenerate interval.
func (s *Torus) Intervals(ray core.Ray) []core.Interval {
	ox, oy, oz := ray.Origin.X, ray.Origin.Y, ray.Origin.Z
	dx, dy := ray.Direction.X, ray.Direction.Y

	alpha := ray.Direction.LengthSquared()
	beta := core.NewDirection(ox, oy, oz).Dot(ray.Direction)
	gamma := ox*ox + oy*oy + oz*oz + s.Major*s.Major - s.Minor*s.Minor
	rr4 := 4 * s.Major * s.Major

	roots := algebra.SolveQuarticReal(
		alpha*alpha,
		4*alpha*beta,
		4*beta*beta+2*alpha*gamma-rr4*(dx*dx+dy*dy),
		4*beta*gamma-2*rr4*(ox*dx+oy*dy),
		gamma*gamma-rr4*(ox*ox+oy*oy),
	)

	switch len(roots) {
	case 0:
		return nil
	case 1:
		tangent := s.at(ray, roots[0])
		return []core.Interval{{Enter: tangent, Exit: tangent}}
	case 3:
		return s.pairByFacing(ray, roots)
	default:
		intervals := make([]core.Interval, 0, len(roots)/2)
		for i := 0; i+1 < len(roots); i += 2 {
			intervals = append(intervals, core.Interval{
				Enter: s.at(ray, roots[i]),
				Exit:  s.at(ray, roots[i+1]),
			})
		}
		return intervals
	}
}

// pairByFacing matches entering roots (normal opposing the ray) with
// the next leaving root; the unmatched tangency degenerates.
func (s *Torus) pairByFacing(ray core.Ray, roots []float64) []core.Interval {
	intervals := make([]core.Interval, 0, 2)
	var open *core.Intersection
	for _, t := range roots {
		hit := s.at(ray, t)
		entering := hit.Normal.Dot(ray.Direction) < 0
		switch {
		case entering && open == nil:
			h := hit
			open = &h
		case !entering && open != nil:
			intervals = append(intervals, core.Interval{Enter: *open, Exit: hit})
			open = nil
		default:
			intervals = append(intervals, core.Interval{Enter: hit, Exit: hit})
		}
	}
	if open != nil {
		intervals = append(intervals, core.Interval{Enter: *open, Exit: *open})
	}
	return intervals
}

func (s *Torus) at(ray core.Ray, t float64) core.Intersection {
	p := ray.At(t)
	k := p.X*p.X + p.Y*p.Y + p.Z*p.Z + s.Major*s.Major - s.Minor*s.Minor
	rr2 := 2 * s.Major * s.Major
	normal := core.NewDirection(p.X*(k-rr2), p.Y*(k-rr2), p.Z*k).Normalize()
	return core.Intersection{T: t, Normal: normal, UV: s.uv(p)}
}

// uv wraps u around the main ring and v around the tube.
func (s *Torus) uv(p core.Point) core.UV {
	u := 0.5 + math.Atan2(p.Y, p.X)/(2*math.Pi)
	ring := math.Sqrt(p.X*p.X+p.Y*p.Y) - s.Major
	v := 0.5 + math.Atan2(p.Z, ring)/(2*math.Pi)
	return core.UV{U: u, V: v}
}
