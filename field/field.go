// Package field provides the uniform-value field container the property models fill.
//
// A Uniform field stores one scalar as its source of truth and broadcasts it into
// per-cell and per-boundary-face storage, so it can be combined elementwise with
// genuinely spatially varying fields of the host solver.
package field

import (
	"fmt"
	"strconv"
	"strings"
)

// Patch is a named group of boundary faces
type Patch struct {
	Name  string
	Faces int
}

// Mesh describes the shape of a field: number of cells plus boundary patches
type Mesh struct {
	Cells   int
	Patches []Patch
}

// ParsePatches parses "inlet:20, outlet:20" into patches
func ParsePatches(s string) ([]Patch, error) {
	var patches []Patch
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, faces, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("patch %q: expected name:faces", item)
		}
		n, err := strconv.Atoi(strings.TrimSpace(faces))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("patch %q: invalid face count", item)
		}
		patches = append(patches, Patch{Name: strings.TrimSpace(name), Faces: n})
	}
	return patches, nil
}

// Validate checks that the mesh has at least one cell and no negative patch
func (m Mesh) Validate() error {
	if m.Cells < 1 {
		return fmt.Errorf("mesh needs at least one cell, got %d", m.Cells)
	}
	for _, p := range m.Patches {
		if p.Faces < 0 {
			return fmt.Errorf("patch %q has negative face count %d", p.Name, p.Faces)
		}
	}
	return nil
}

// View is the read-only face of a field handed out to consumers
type View interface {
	Name() string
	Value() float64
	Len() int
	At(i int) float64
	Cells() []float64
	NumPatches() int
	Patch(i int) []float64
}

// Uniform is a field whose cells and boundary faces all carry the same value
type Uniform struct {
	name     string
	value    float64
	cells    []float64
	boundary [][]float64
}

// NewUniform allocates a zero-valued field over mesh
func NewUniform(name string, mesh Mesh) *Uniform {
	f := &Uniform{
		name:     name,
		cells:    make([]float64, mesh.Cells),
		boundary: make([][]float64, len(mesh.Patches)),
	}
	for i, p := range mesh.Patches {
		f.boundary[i] = make([]float64, p.Faces)
	}
	return f
}

func (f *Uniform) Name() string {
	return f.name
}

// Value returns the scalar every element holds
func (f *Uniform) Value() float64 {
	return f.value
}

// Set broadcasts v into every cell and every boundary face
func (f *Uniform) Set(v float64) {
	f.value = v
	for i := range f.cells {
		f.cells[i] = v
	}
	for _, faces := range f.boundary {
		for i := range faces {
			faces[i] = v
		}
	}
}

// Divide sets f = src / s elementwise. src and f must share a mesh.
func (f *Uniform) Divide(src *Uniform, s float64) {
	f.value = src.value / s
	for i, v := range src.cells {
		f.cells[i] = v / s
	}
	for p, faces := range src.boundary {
		for i, v := range faces {
			f.boundary[p][i] = v / s
		}
	}
}

// Len returns the number of cells
func (f *Uniform) Len() int {
	return len(f.cells)
}

// At returns the value of cell i
func (f *Uniform) At(i int) float64 {
	return f.cells[i]
}

// Cells returns a copy of the cell values
func (f *Uniform) Cells() []float64 {
	out := make([]float64, len(f.cells))
	copy(out, f.cells)
	return out
}

func (f *Uniform) NumPatches() int {
	return len(f.boundary)
}

// Patch returns a copy of the face values on patch i
func (f *Uniform) Patch(i int) []float64 {
	out := make([]float64, len(f.boundary[i]))
	copy(out, f.boundary[i])
	return out
}
