// Package viscosity implements the laminar viscosity models offered to the flow solver.
//
// Every model fills a set of uniform fields from its coefficients. The solver reads new
// coefficients with Read, recomputes with Correct and then consumes the fields.
// Read never recomputes: a model whose Read succeeded keeps serving the previous
// fields until Correct is called.
package viscosity

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"heprop/field"
	"heprop/model"
)

// Model defines the interface for viscosity models
type Model interface {
	Type() string                 // registered type name
	Read(prms dbf.Params) bool    // reads coefficients; false leaves the model unchanged
	Correct()                     // recomputes every field from the current coefficients
	Nu() field.View               // kinematic viscosity
	NuPatch(patchi int) []float64 // kinematic viscosity on one boundary patch
	Beta() field.View             // thermal expansion coefficient
	AGM() field.View              // Gorter-Mellink mutual friction coefficient
	S() field.View                // entropy
	Eta() field.View              // dynamic viscosity
	Cp() field.View               // specific heat at constant pressure
	Onebyf() field.View           // heat conductivity function
	Rho() float64                 // density
	Snapshot() model.Properties   // current scalar values
}

// New viscosity model
func New(typeName string, mesh field.Mesh, prms dbf.Params) (Model, error) {
	allocator, ok := allocators[typeName]
	if !ok {
		return nil, chk.Err("model %q is not available in 'viscosity' database", typeName)
	}
	return allocator(mesh, prms)
}

// Types returns the registered model names, sorted
func Types() []string {
	names := make([]string, 0, len(allocators))
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// allocators holds all available models
var allocators = map[string]func(mesh field.Mesh, prms dbf.Params) (Model, error){}
