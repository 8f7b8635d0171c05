package property

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"sync"

	"github.com/cpmech/gosl/chk"
)

// 物性参数表，1.500 K 到 2.167 K，步长 0.001 K
//
//go:embed data/helium.csv
var heliumCSV []byte

// Column names of the bundled data, in file order after the temperature column
const (
	Beta   = "beta"   // thermal expansion coefficient, 1/K
	AGM    = "AGM"    // Gorter-Mellink coefficient, m s/kg
	S      = "s"      // entropy, J/(kg K)
	Eta    = "eta"    // dynamic viscosity, Pa s
	Cp     = "cp"     // specific heat at constant pressure, J/(kg K)
	Onebyf = "onebyf" // heat conductivity function, W^3/(m^5 K)
)

// Names lists the tabulated quantities in the order a model corrects them
var Names = []string{Beta, AGM, S, Eta, Cp, Onebyf}

// Tables groups the six He II property tables
type Tables struct {
	Domain Domain
	Beta   *Table
	AGM    *Table
	S      *Table
	Eta    *Table
	Cp     *Table
	Onebyf *Table
}

// ByName returns the table called name, or nil
func (t *Tables) ByName(name string) *Table {
	switch name {
	case Beta:
		return t.Beta
	case AGM:
		return t.AGM
	case S:
		return t.S
	case Eta:
		return t.Eta
	case Cp:
		return t.Cp
	case Onebyf:
		return t.Onebyf
	}
	return nil
}

var (
	heliumOnce   sync.Once
	heliumTables *Tables
)

// Helium returns the bundled tables. They are parsed on first use and shared by every
// caller afterwards. Inconsistent bundled data is a build defect, so it panics.
func Helium() *Tables {
	heliumOnce.Do(func() {
		tables, err := ReadTables(bytes.NewReader(heliumCSV), HeliumDomain)
		if err != nil {
			chk.Panic("cannot load bundled helium tables: %v", err)
		}
		heliumTables = tables
	})
	return heliumTables
}

// ReadTables parses a csv stream with the header "T,beta,AGM,s,eta,cp,onebyf" into tables
// over d. Lines starting with '#' are ignored. Every row's temperature must match its grid
// point within a tenth of a step.
func ReadTables(r io.Reader, d Domain) (*Tables, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, chk.Err("cannot read table header: %v", err)
	}
	want := append([]string{"T"}, Names...)
	if len(header) != len(want) {
		return nil, chk.Err("table header has %d columns, expected %d", len(header), len(want))
	}
	for i, name := range want {
		if header[i] != name {
			return nil, chk.Err("table column %d is %q, expected %q", i, header[i], name)
		}
	}

	columns := make([][]float64, len(Names))
	row := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, chk.Err("cannot read table row %d: %v", row, err)
		}
		values := make([]float64, len(rec))
		for i, field := range rec {
			values[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, chk.Err("row %d column %q: %v", row, want[i], err)
			}
		}
		if math.Abs(values[0]-d.Temperature(row)) > d.DT/10 {
			return nil, chk.Err("row %d has T = %g, expected %g", row, values[0], d.Temperature(row))
		}
		for i := range Names {
			columns[i] = append(columns[i], values[i+1])
		}
		row++
	}

	tables := &Tables{Domain: d}
	targets := []**Table{&tables.Beta, &tables.AGM, &tables.S, &tables.Eta, &tables.Cp, &tables.Onebyf}
	for i, name := range Names {
		tbl, err := NewTable(name, columns[i], d)
		if err != nil {
			return nil, err
		}
		*targets[i] = tbl
	}
	return tables, nil
}
