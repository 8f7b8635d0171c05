package viscosity

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	log "github.com/sirupsen/logrus"

	"heprop/field"
	"heprop/model"
	"heprop/property"
)

const HeliumConstType = "HeliumConst"

// add model to factory
func init() {
	allocators[HeliumConstType] = func(mesh field.Mesh, prms dbf.Params) (Model, error) {
		m, err := NewHeliumConst(mesh, prms)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// Tlambda returns the lambda point temperature of helium, K
func Tlambda() float64 {
	return property.Tlambda
}

// HeliumConst derives the properties of He II at one representative temperature.
//
// Coefficients (HeliumConstCoeffs):
//
//	TMean       representative temperature, K (required)
//	rhoHe       density, kg/m3 (required, > 0)
//	interpolate > 0 blends neighbouring table samples instead of taking the nearest (optional)
//
// All fields are uniform. nu is not tabulated: it is eta / rho.
type HeliumConst struct {
	tables *property.Tables
	eval   property.Evaluator

	tMean float64
	rho   float64
	stale bool
	clamp property.Clamp

	beta   *field.Uniform
	agm    *field.Uniform
	s      *field.Uniform
	eta    *field.Uniform
	cp     *field.Uniform
	onebyf *field.Uniform
	nu     *field.Uniform
}

// NewHeliumConst allocates the fields over mesh, reads prms and computes the fields once
func NewHeliumConst(mesh field.Mesh, prms dbf.Params) (*HeliumConst, error) {
	if err := mesh.Validate(); err != nil {
		return nil, chk.Err("HeliumConst: %v", err)
	}
	tables := property.Helium()
	o := &HeliumConst{
		tables: tables,
		eval:   property.Evaluator{Domain: tables.Domain, Mode: property.Nearest},
		beta:   field.NewUniform("betaHe", mesh),
		agm:    field.NewUniform("AGMHe", mesh),
		s:      field.NewUniform("sHe", mesh),
		eta:    field.NewUniform("etaHe", mesh),
		cp:     field.NewUniform("cpHe", mesh),
		onebyf: field.NewUniform("onebyf", mesh),
		nu:     field.NewUniform("nu", mesh),
	}
	if !o.Read(prms) {
		return nil, chk.Err("HeliumConst: cannot read coefficients. 'TMean' and 'rhoHe' must be given as finite numbers and rhoHe must be positive")
	}
	o.Correct()
	return o, nil
}

func (o *HeliumConst) Type() string {
	return HeliumConstType
}

// Read loads TMean and rhoHe. On any missing or malformed coefficient it returns false
// and the model keeps its previous state. It does not call Correct.
func (o *HeliumConst) Read(prms dbf.Params) bool {
	reject := func(key, reason string) bool {
		readTotal.WithLabelValues(HeliumConstType, resultRejected).Inc()
		log.WithFields(log.Fields{
			"model":  HeliumConstType,
			"key":    key,
			"reason": reason,
		}).Warn("coefficients rejected, keeping previous state")
		return false
	}

	tMean, reason := coefficient(prms, "TMean")
	if reason != "" {
		return reject("TMean", reason)
	}
	rho, reason := coefficient(prms, "rhoHe")
	if reason != "" {
		return reject("rhoHe", reason)
	}
	if rho <= 0 {
		return reject("rhoHe", "not positive")
	}
	mode := o.eval.Mode
	if p := prms.Find("interpolate"); p != nil {
		if math.IsNaN(p.V) {
			return reject("interpolate", "malformed")
		}
		mode = property.Nearest
		if p.V > 0 {
			mode = property.Linear
		}
	}

	o.tMean = tMean
	o.rho = rho
	o.eval.Mode = mode
	o.stale = true
	readTotal.WithLabelValues(HeliumConstType, resultOk).Inc()
	log.WithFields(log.Fields{
		"TMean":         tMean,
		"rhoHe":         rho,
		"interpolation": mode.String(),
	}).Info("HeliumConst coefficients read")
	return true
}

// Correct recomputes beta, AGM, s, eta, cp and onebyf from the tables at TMean, then
// nu = eta / rho. Temperatures outside the tables take the value at the nearest end.
func (o *HeliumConst) Correct() {
	loc := o.tables.Domain.Locate(o.tMean)

	o.beta.Set(o.eval.At(o.tables.Beta, loc))
	o.agm.Set(o.eval.At(o.tables.AGM, loc))
	o.s.Set(o.eval.At(o.tables.S, loc))
	o.eta.Set(o.eval.At(o.tables.Eta, loc))
	o.cp.Set(o.eval.At(o.tables.Cp, loc))
	o.onebyf.Set(o.eval.At(o.tables.Onebyf, loc))
	o.nu.Divide(o.eta, o.rho)

	o.stale = false
	o.clamp = loc.Clamp
	correctTotal.WithLabelValues(HeliumConstType).Inc()
	if loc.Clamp != property.ClampNone {
		clampedTotal.WithLabelValues(loc.Clamp.String()).Inc()
		log.WithFields(log.Fields{
			"TMean": o.tMean,
			"TMin":  o.tables.Domain.TMin,
			"TMax":  o.tables.Domain.TMax,
			"side":  loc.Clamp.String(),
		}).Debug("temperature outside the property tables, using the boundary value")
	}
}

func (o *HeliumConst) Nu() field.View { return o.nu }

// NuPatch returns nu on boundary patch patchi
func (o *HeliumConst) NuPatch(patchi int) []float64 { return o.nu.Patch(patchi) }

func (o *HeliumConst) Beta() field.View   { return o.beta }
func (o *HeliumConst) AGM() field.View    { return o.agm }
func (o *HeliumConst) S() field.View      { return o.s }
func (o *HeliumConst) Eta() field.View    { return o.eta }
func (o *HeliumConst) Cp() field.View     { return o.cp }
func (o *HeliumConst) Onebyf() field.View { return o.onebyf }
func (o *HeliumConst) Rho() float64       { return o.rho }

// TMean returns the representative temperature last read
func (o *HeliumConst) TMean() float64 { return o.tMean }

// Stale reports whether coefficients were read after the last Correct
func (o *HeliumConst) Stale() bool { return o.stale }

func (o *HeliumConst) Snapshot() model.Properties {
	return model.Properties{
		Model:         HeliumConstType,
		Temperature:   o.tMean,
		Tlambda:       Tlambda(),
		Interpolation: o.eval.Mode.String(),
		Stale:         o.stale,
		Rho:           o.rho,
		Nu:            o.nu.Value(),
		Beta:          o.beta.Value(),
		AGM:           o.agm.Value(),
		S:             o.s.Value(),
		Eta:           o.eta.Value(),
		Cp:            o.cp.Value(),
		Onebyf:        o.onebyf.Value(),
		Clamped:       o.clamp.String(),
	}
}
