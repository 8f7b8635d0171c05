package property

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// 超流氦物性表的温度范围
const (
	TMin     = 1.5          // K
	TMax     = 2.167        // K
	Tlambda  = 2.1711132461 // lambda 点温度, K
	DT       = 0.001        // 表格温度步长, K
	IndexMin = 0
	IndexMax = 667
)

// Clamp 标记温度是否超出表格范围
type Clamp int

const (
	ClampNone Clamp = iota
	ClampBelow
	ClampAbove
)

func (c Clamp) String() string {
	switch c {
	case ClampBelow:
		return "below"
	case ClampAbove:
		return "above"
	}
	return "none"
}

// Domain describes a uniformly sampled temperature interval.
// Sample i sits at TMin + i*DT.
type Domain struct {
	TMin     float64
	TMax     float64
	Tlambda  float64
	DT       float64
	IndexMin int
	IndexMax int
}

// HeliumDomain is the interval covered by the bundled He II tables.
var HeliumDomain = Domain{
	TMin:     TMin,
	TMax:     TMax,
	Tlambda:  Tlambda,
	DT:       DT,
	IndexMin: IndexMin,
	IndexMax: IndexMax,
}

// NewDomain builds a domain and derives IndexMax = round((tMax-tMin)/dT).
// Tlambda only has to lie above tMin: the bundled tables stop a few mK short of the
// transition, where the properties diverge.
func NewDomain(tMin, tMax, tlambda, dT float64) (Domain, error) {
	if !(dT > 0) || math.IsInf(dT, 0) {
		return Domain{}, chk.Err("temperature step must be positive. dT = %g is invalid", dT)
	}
	if !(tMin < tMax) {
		return Domain{}, chk.Err("TMin (%g) must be smaller than TMax (%g)", tMin, tMax)
	}
	if !(tlambda > tMin) {
		return Domain{}, chk.Err("Tlambda (%g) must be greater than TMin (%g)", tlambda, tMin)
	}
	return Domain{
		TMin:     tMin,
		TMax:     tMax,
		Tlambda:  tlambda,
		DT:       dT,
		IndexMin: 0,
		IndexMax: int(math.Floor((tMax-tMin)/dT + 0.5)),
	}, nil
}

// Size returns the number of samples a table over d must hold
func (d Domain) Size() int {
	return d.IndexMax - d.IndexMin + 1
}

// Temperature returns the temperature of sample i
func (d Domain) Temperature(i int) float64 {
	return d.TMin + float64(i)*d.DT
}

// Location is the result of mapping a temperature onto the table grid
type Location struct {
	Index int     // nearest sample, clamped
	Lower int     // sample at or below T, clamped, used for interpolation
	Frac  float64 // (T - T[Lower]) / dT, in [0, 1)
	Clamp Clamp
}

// Locate maps T onto the grid. The nearest index is floor(x + 0.5) with
// x = (T - TMin)/dT, so an exact half step rounds up. Values outside
// [TMin, TMax] saturate at the table ends; NaN saturates at the cold end.
func (d Domain) Locate(T float64) Location {
	x := (T - d.TMin) / d.DT
	top := float64(d.IndexMax - d.IndexMin)
	switch {
	case math.IsNaN(x) || x <= 0:
		clamp := ClampNone
		if math.IsNaN(x) || x < 0 {
			clamp = ClampBelow
		}
		return Location{Index: d.IndexMin, Lower: d.IndexMin, Clamp: clamp}
	case x >= top:
		clamp := ClampNone
		if x > top {
			clamp = ClampAbove
		}
		return Location{Index: d.IndexMax, Lower: d.IndexMax, Clamp: clamp}
	}
	nearest := math.Floor(x + 0.5)
	lower := math.Floor(x)
	return Location{
		Index: d.IndexMin + int(nearest),
		Lower: d.IndexMin + int(lower),
		Frac:  x - lower,
	}
}

// Index returns the clamped nearest-sample index for T
func (d Domain) Index(T float64) int {
	return d.Locate(T).Index
}
