package cost

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/quadmesh/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// MaxScore is the score of a perfect square.
const MaxScore int64 = 1000

// ErrUnknownVariant is returned by ParseVariant for an unrecognised name.
var ErrUnknownVariant = errors.New("cost: unknown variant")

// Variant selects the scoring formula.
type Variant uint8

const (
	// Angle scores by corner-angle deviation from π/2. Default.
	Angle Variant = iota
	// Distance scores by side/diagonal length ratios.
	Distance
)

// String returns "angle" or "distance".
func (v Variant) String() string {
	switch v {
	case Angle:
		return "angle"
	case Distance:
		return "distance"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

// ParseVariant maps "angle" or "distance" (any case) to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "angle":
		return Angle, nil
	case "distance":
		return Distance, nil
	default:
		return Angle, fmt.Errorf("%q: %w", s, ErrUnknownVariant)
	}
}

// Score dispatches to AngleScore or DistanceScore. Unknown variants score 0.
func Score(v Variant, q [4]mesh.Point) int64 {
	switch v {
	case Angle:
		return AngleScore(q)
	case Distance:
		return DistanceScore(q)
	default:
		return 0
	}
}

// AngleScore computes the four corner angles of q (an angle above π is folded
// back by π), takes the largest deviation from π/2 over the corner pairs
// (q[0], q[2]) and (q[1], q[3]), and maps it linearly onto [0, MaxScore].
func AngleScore(q [4]mesh.Point) int64 {
	var dev [4]float64
	for i := range q {
		a := cornerAngle(q[(i+3)%4], q[i], q[(i+1)%4])
		dev[i] = math.Abs(math.Pi/2 - a)
	}
	worst := math.Max(math.Max(dev[0], dev[2]), math.Max(dev[1], dev[3]))

	return clamp(math.Round(float64(MaxScore) * math.Max(0, 1-(2/math.Pi)*worst)))
}

// cornerAngle returns the counter-clockwise angle at v from v→next to v→prev,
// in [0, π] after folding.
func cornerAngle(prev, v, next mesh.Point) float64 {
	a := r3.Sub(next, v)
	b := r3.Sub(prev, v)
	ang := math.Atan2(a.X*b.Y-a.Y*b.X, a.X*b.X+a.Y*b.Y)
	if ang < 0 {
		ang += 2 * math.Pi
	}
	if ang > math.Pi {
		ang -= math.Pi
	}

	return ang
}

// DistanceScore uses squared lengths: sides a=|p0p1|², b=|p0p2|², c=|p3p1|²,
// d=|p3p2|² and diagonals e=|p1p2|², f=|p0p3|². For each diagonal the two
// triangles it cuts are compared with a right triangle:
//
//	ηe = max((a+b)/e, e/(a+b)) + max((c+d)/e, e/(c+d))
//	ηf = max((a+c)/f, f/(a+c)) + max((b+d)/f, f/(b+d))
//
// and the score is round(2·MaxScore / max(ηe, ηf)). A zero diagonal or a zero
// side sum scores 0.
func DistanceScore(q [4]mesh.Point) int64 {
	p0, p1, p3, p2 := q[0], q[1], q[2], q[3]
	sq := func(u, v mesh.Point) float64 { return r3.Norm2(r3.Sub(u, v)) }

	a, b := sq(p0, p1), sq(p0, p2)
	c, d := sq(p3, p1), sq(p3, p2)
	e, f := sq(p1, p2), sq(p0, p3)

	etaE, okE := eta(a+b, c+d, e)
	etaF, okF := eta(a+c, b+d, f)
	if !okE || !okF {
		return 0
	}

	return clamp(math.Round(2 * float64(MaxScore) / math.Max(etaE, etaF)))
}

// eta sums the two Pythagoras ratios for diagonal diag.
func eta(s1, s2, diag float64) (float64, bool) {
	if diag <= 0 || s1 <= 0 || s2 <= 0 {
		return 0, false
	}
	ratio := func(s float64) float64 { return math.Max(s/diag, diag/s) }

	return ratio(s1) + ratio(s2), true
}

func clamp(x float64) int64 {
	switch {
	case math.IsNaN(x) || x <= 0:
		return 0
	case x >= float64(MaxScore):
		return MaxScore
	default:
		return int64(x)
	}
}
