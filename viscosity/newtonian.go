package viscosity

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	log "github.com/sirupsen/logrus"

	"heprop/field"
	"heprop/model"
)

const NewtonianType = "Newtonian"

func init() {
	allocators[NewtonianType] = func(mesh field.Mesh, prms dbf.Params) (Model, error) {
		m, err := NewNewtonian(mesh, prms)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// coefficient finds a finite parameter. reason is "missing" or "malformed" otherwise.
func coefficient(prms dbf.Params, name string) (v float64, reason string) {
	p := prms.Find(name)
	if p == nil {
		return 0, "missing"
	}
	if math.IsNaN(p.V) || math.IsInf(p.V, 0) {
		return 0, "malformed"
	}
	return p.V, ""
}

// Newtonian is a fluid with constant kinematic viscosity.
//
// Coefficients (NewtonianCoeffs): nu [m2/s] and rho [kg/m3], both positive.
// eta = nu * rho; the helium specific fields stay zero.
type Newtonian struct {
	nuValue float64
	rho     float64

	nu     *field.Uniform
	eta    *field.Uniform
	beta   *field.Uniform
	agm    *field.Uniform
	s      *field.Uniform
	cp     *field.Uniform
	onebyf *field.Uniform
}

// NewNewtonian allocates the fields, reads prms and corrects once
func NewNewtonian(mesh field.Mesh, prms dbf.Params) (*Newtonian, error) {
	if err := mesh.Validate(); err != nil {
		return nil, chk.Err("Newtonian: %v", err)
	}
	o := &Newtonian{
		nu:     field.NewUniform("nu", mesh),
		eta:    field.NewUniform("eta", mesh),
		beta:   field.NewUniform("beta", mesh),
		agm:    field.NewUniform("AGM", mesh),
		s:      field.NewUniform("s", mesh),
		cp:     field.NewUniform("cp", mesh),
		onebyf: field.NewUniform("onebyf", mesh),
	}
	if !o.Read(prms) {
		return nil, chk.Err("Newtonian: cannot read coefficients. 'nu' and 'rho' must be given as positive numbers")
	}
	o.Correct()
	return o, nil
}

func (o *Newtonian) Type() string {
	return NewtonianType
}

func (o *Newtonian) Read(prms dbf.Params) bool {
	nu, reason := coefficient(prms, "nu")
	if reason == "" && nu <= 0 {
		reason = "not positive"
	}
	rho, reason2 := coefficient(prms, "rho")
	if reason2 == "" && rho <= 0 {
		reason2 = "not positive"
	}
	if reason != "" || reason2 != "" {
		readTotal.WithLabelValues(NewtonianType, resultRejected).Inc()
		log.WithFields(log.Fields{
			"model": NewtonianType,
			"nu":    reason,
			"rho":   reason2,
		}).Warn("coefficients rejected, keeping previous state")
		return false
	}
	o.nuValue = nu
	o.rho = rho
	readTotal.WithLabelValues(NewtonianType, resultOk).Inc()
	return true
}

func (o *Newtonian) Correct() {
	o.nu.Set(o.nuValue)
	o.eta.Set(o.nuValue * o.rho)
	correctTotal.WithLabelValues(NewtonianType).Inc()
}

func (o *Newtonian) Nu() field.View               { return o.nu }
func (o *Newtonian) NuPatch(patchi int) []float64 { return o.nu.Patch(patchi) }
func (o *Newtonian) Beta() field.View             { return o.beta }
func (o *Newtonian) AGM() field.View              { return o.agm }
func (o *Newtonian) S() field.View                { return o.s }
func (o *Newtonian) Eta() field.View              { return o.eta }
func (o *Newtonian) Cp() field.View               { return o.cp }
func (o *Newtonian) Onebyf() field.View           { return o.onebyf }
func (o *Newtonian) Rho() float64                 { return o.rho }

func (o *Newtonian) Snapshot() model.Properties {
	return model.Properties{
		Model:   NewtonianType,
		Rho:     o.rho,
		Nu:      o.nu.Value(),
		Eta:     o.eta.Value(),
		Clamped: "none",
	}
}
