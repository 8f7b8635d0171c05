package property

import (
	"github.com/cpmech/gosl/chk"
)

// Table holds the samples of one physical quantity over a Domain.
// A Table is never modified after NewTable returns and may be shared freely.
type Table struct {
	name    string
	samples []float64
}

// NewTable copies samples into a new table. The number of samples must match d.Size().
func NewTable(name string, samples []float64, d Domain) (*Table, error) {
	if len(samples) != d.Size() {
		return nil, chk.Err("table %q has %d samples but the temperature domain needs %d (index %d to %d)",
			name, len(samples), d.Size(), d.IndexMin, d.IndexMax)
	}
	s := make([]float64, len(samples))
	copy(s, samples)
	return &Table{name: name, samples: s}, nil
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Len() int {
	return len(t.samples)
}

// At returns sample i. i must be a clamped index produced by Domain.Locate.
func (t *Table) At(i int) float64 {
	return t.samples[i]
}
