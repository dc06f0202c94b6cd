// File: yaml.go
// Role: ParticleList YAML decoding, validation and encoding.
// Determinism:
//   - DumpYAML writes particles in name order (yaml.v3 sorts map keys).
// Concurrency:
//   - The package validator is built once and is safe for concurrent use.

package particle

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qrules/quantum"
)

// validate checks decoded definitions. Fractions are validated as float64.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		if fr, ok := f.Interface().(quantum.Fraction); ok {
			return fr.Float64()
		}
		return nil
	}, quantum.Fraction{})
	_ = v.RegisterValidation("halfint", func(fl validator.FieldLevel) bool {
		doubled := 2 * fl.Field().Float()
		return doubled == math.Trunc(doubled)
	})

	return v
}

type listYAML struct {
	ParticleList map[string]definitionYAML `yaml:"ParticleList" validate:"required,min=1,dive"`
}

type definitionYAML struct {
	PID            int64              `yaml:"PID" validate:"ne=0"`
	Mass           float64            `yaml:"Mass" validate:"gte=0"`
	Width          *float64           `yaml:"Width,omitempty" validate:"omitempty,gte=0"`
	QuantumNumbers quantumNumbersYAML `yaml:"QuantumNumbers"`
}

type quantumNumbersYAML struct {
	Spin         quantum.Fraction `yaml:"Spin" validate:"gte=0,halfint"`
	Charge       int64            `yaml:"Charge"`
	Parity       int64            `yaml:"Parity,omitempty" validate:"oneof=-1 0 1"`
	CParity      int64            `yaml:"CParity,omitempty" validate:"oneof=-1 0 1"`
	GParity      int64            `yaml:"GParity,omitempty" validate:"oneof=-1 0 1"`
	Strangeness  int64            `yaml:"Strangeness,omitempty"`
	Charmness    int64            `yaml:"Charmness,omitempty"`
	Bottomness   int64            `yaml:"Bottomness,omitempty"`
	Topness      int64            `yaml:"Topness,omitempty"`
	BaryonNumber int64            `yaml:"BaryonNumber,omitempty"`
	ElectronLN   int64            `yaml:"ElectronLN,omitempty"`
	MuonLN       int64            `yaml:"MuonLN,omitempty"`
	TauLN        int64            `yaml:"TauLN,omitempty"`
	IsoSpin      *isospinYAML     `yaml:"IsoSpin,omitempty"`
}

// isospinYAML is either the scalar 0 or {Value, Projection}.
type isospinYAML struct {
	Value      quantum.Fraction `yaml:"Value" validate:"gte=0,halfint"`
	Projection quantum.Fraction `yaml:"Projection" validate:"halfint"`
}

func (s *isospinYAML) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var v quantum.Fraction
		if err := node.Decode(&v); err != nil {
			return err
		}
		if !v.IsZero() {
			return fmt.Errorf("line %d: scalar isospin must be 0, got %s", node.Line, v)
		}
		*s = isospinYAML{}
		return nil
	}
	type plain isospinYAML
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*s = isospinYAML(p)

	return nil
}

func (s isospinYAML) MarshalYAML() (interface{}, error) {
	if s.Value.IsZero() {
		return 0, nil
	}
	type plain isospinYAML

	return plain(s), nil
}

// LoadYAML decodes a ParticleList document into a Collection.
func LoadYAML(r io.Reader) (*Collection, error) {
	var doc listYAML
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	c, err := NewCollection()
	if err != nil {
		return nil, err
	}
	for name, def := range doc.ParticleList {
		p, err := def.particle(name)
		if err != nil {
			return nil, err
		}
		if err := c.Add(p); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// LoadFile reads a ParticleList YAML file.
func LoadFile(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("particle: open %s: %w", path, err)
	}
	defer f.Close()

	c, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// DumpYAML writes c as a ParticleList document. Zero-valued and undefined
// numbers are omitted.
func DumpYAML(w io.Writer, c *Collection) error {
	doc := listYAML{ParticleList: make(map[string]definitionYAML, c.Len())}
	for _, p := range c.All() {
		doc.ParticleList[p.Name] = definitionFrom(p)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("particle: encode: %w", err)
	}

	return enc.Close()
}

func (d definitionYAML) particle(name string) (Particle, error) {
	qn := d.QuantumNumbers
	p := Particle{
		Name:         name,
		PID:          d.PID,
		Mass:         d.Mass,
		Spin:         qn.Spin,
		Charge:       qn.Charge,
		Strangeness:  qn.Strangeness,
		Charmness:    qn.Charmness,
		Bottomness:   qn.Bottomness,
		Topness:      qn.Topness,
		BaryonNumber: qn.BaryonNumber,
		ElectronLN:   qn.ElectronLN,
		MuonLN:       qn.MuonLN,
		TauLN:        qn.TauLN,
		Parity:       quantum.Parity(qn.Parity),
		CParity:      quantum.Parity(qn.CParity),
		GParity:      quantum.Parity(qn.GParity),
	}
	if d.Width != nil {
		p.Width = *d.Width
	}
	if iso := qn.IsoSpin; iso != nil {
		if iso.Value.Less(iso.Projection.Abs()) || !iso.Value.Sub(iso.Projection).IsInteger() {
			return Particle{}, fmt.Errorf("%w: %s: isospin projection %s invalid for magnitude %s",
				ErrInvalidDefinition, name, iso.Projection, iso.Value)
		}
		p.Isospin = &IsospinState{Magnitude: iso.Value, Projection: iso.Projection}
	}

	return p, nil
}

func definitionFrom(p Particle) definitionYAML {
	d := definitionYAML{
		PID:  p.PID,
		Mass: p.Mass,
		QuantumNumbers: quantumNumbersYAML{
			Spin:         p.Spin,
			Charge:       p.Charge,
			Parity:       int64(p.Parity),
			CParity:      int64(p.CParity),
			GParity:      int64(p.GParity),
			Strangeness:  p.Strangeness,
			Charmness:    p.Charmness,
			Bottomness:   p.Bottomness,
			Topness:      p.Topness,
			BaryonNumber: p.BaryonNumber,
			ElectronLN:   p.ElectronLN,
			MuonLN:       p.MuonLN,
			TauLN:        p.TauLN,
		},
	}
	if p.Width != 0 {
		w := p.Width
		d.Width = &w
	}
	if p.Isospin != nil {
		d.QuantumNumbers.IsoSpin = &isospinYAML{Value: p.Isospin.Magnitude, Projection: p.Isospin.Projection}
	}

	return d
}
