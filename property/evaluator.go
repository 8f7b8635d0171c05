package property

import "strings"

// Interpolation selects how a located temperature is turned into a value
type Interpolation int

const (
	// Nearest returns the sample closest to T
	Nearest Interpolation = iota
	// Linear blends the two samples around T. It is not the reference behaviour of the
	// tabulated model and has to be requested explicitly.
	Linear
)

func (m Interpolation) String() string {
	if m == Linear {
		return "linear"
	}
	return "nearest"
}

// ParseInterpolation accepts "nearest" or "linear"
func ParseInterpolation(s string) (Interpolation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nearest":
		return Nearest, true
	case "linear":
		return Linear, true
	}
	return Nearest, false
}

// Evaluate returns the nearest tabulated value of tbl at temperature T.
// It never fails: temperatures outside the domain saturate at the table ends.
func Evaluate(tbl *Table, T float64, d Domain) float64 {
	return tbl.At(d.Index(T))
}

// Evaluator evaluates tables over one domain with a fixed interpolation mode
type Evaluator struct {
	Domain Domain
	Mode   Interpolation
}

// Evaluate locates T and reads tbl
func (e Evaluator) Evaluate(tbl *Table, T float64) float64 {
	return e.At(tbl, e.Domain.Locate(T))
}

// At reads tbl at an already computed location, so one Locate can serve several tables
func (e Evaluator) At(tbl *Table, loc Location) float64 {
	if e.Mode != Linear || loc.Clamp != ClampNone || loc.Lower >= e.Domain.IndexMax {
		return tbl.At(loc.Index)
	}
	lo, hi := tbl.At(loc.Lower), tbl.At(loc.Lower+1)
	return lo + (hi-lo)*loc.Frac
}
