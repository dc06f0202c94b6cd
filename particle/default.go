package particle

import (
	"bytes"
	_ "embed"
	"sync"
)

// defaultList is the embedded ParticleList shipped with the module.
//
//go:embed default_particles.yml
var defaultList []byte

var loadDefault = sync.OnceValues(func() ([]Particle, error) {
	c, err := LoadYAML(bytes.NewReader(defaultList))
	if err != nil {
		return nil, err
	}

	return c.All(), nil
})

// Default returns a fresh Collection holding the embedded particle list.
// Callers may Add to it without affecting other callers.
func Default() (*Collection, error) {
	particles, err := loadDefault()
	if err != nil {
		return nil, err
	}

	return NewCollection(particles...)
}
