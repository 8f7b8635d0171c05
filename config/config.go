package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/cpmech/gosl/fun/dbf"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"heprop/field"
)

const (
	DefaultPath  = "conf/config.ini"
	DefaultAddr  = ":9000"
	DefaultModel = "HeliumConst"
)

// Config 服务配置 + 输运模型配置
type Config struct {
	Addr  string
	Mesh  field.Mesh
	Model string // viscosity model type, e.g. HeliumConst

	coeffs map[string]dbf.Params // <Model>Coeffs sections
}

// Load reads an ini file
func Load(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return loadCfg(file)
}

// Parse reads ini content from memory
func Parse(data []byte) (*Config, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return loadCfg(file)
}

func loadCfg(file *ini.File) (*Config, error) {
	mesh := file.Section("mesh")
	patches, err := field.ParsePatches(mesh.Key("Patches").MustString(""))
	if err != nil {
		return nil, fmt.Errorf("mesh patches: %w", err)
	}
	cfg := &Config{
		Addr: file.Section("server").Key("Addr").MustString(DefaultAddr),
		Mesh: field.Mesh{
			Cells:   mesh.Key("Cells").MustInt(1),
			Patches: patches,
		},
		Model:  file.Section("transport").Key("Model").MustString(DefaultModel),
		coeffs: make(map[string]dbf.Params),
	}
	if err := cfg.Mesh.Validate(); err != nil {
		return nil, err
	}

	for _, sec := range file.Sections() {
		name := sec.Name()
		if !strings.HasSuffix(name, "Coeffs") {
			continue
		}
		cfg.coeffs[strings.TrimSuffix(name, "Coeffs")] = sectionParams(sec)
	}

	log.WithFields(log.Fields{
		"addr":    cfg.Addr,
		"cells":   cfg.Mesh.Cells,
		"patches": len(cfg.Mesh.Patches),
		"model":   cfg.Model,
	}).Info("config loaded")
	return cfg, nil
}

// sectionParams converts every key of sec into a named parameter. A value that is not a
// number becomes NaN so the consuming model can report it as malformed.
func sectionParams(sec *ini.Section) dbf.Params {
	var prms dbf.Params
	for _, key := range sec.Keys() {
		v, err := key.Float64()
		if err != nil {
			log.WithFields(log.Fields{
				"section": sec.Name(),
				"key":     key.Name(),
				"value":   key.String(),
			}).Warn("coefficient is not a number")
			v = math.NaN()
		}
		prms = append(prms, &dbf.P{N: key.Name(), V: v})
	}
	return prms
}

// Coeffs returns the coefficients of the given model type; nil if the section is absent
func (c *Config) Coeffs(model string) dbf.Params {
	return c.coeffs[model]
}

// Params converts a plain name -> value map into named parameters
func Params(values map[string]float64) dbf.Params {
	prms := make(dbf.Params, 0, len(values))
	for n, v := range values {
		prms = append(prms, &dbf.P{N: n, V: v})
	}
	return prms
}
