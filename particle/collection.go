// File: collection.go
// Role: name- and PID-indexed particle set.
// Determinism:
//   - All and Filter return particles sorted by name.
// Concurrency:
//   - All methods are safe for concurrent use; mu guards both indexes.

package particle

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Collection is a set of particles that are unique by name and by PID.
type Collection struct {
	mu     sync.RWMutex
	byName map[string]Particle
	byPID  map[int64]string
}

// NewCollection builds a Collection from particles, failing on the first
// empty name or duplicate.
func NewCollection(particles ...Particle) (*Collection, error) {
	c := &Collection{
		byName: make(map[string]Particle, len(particles)),
		byPID:  make(map[int64]string, len(particles)),
	}
	for _, p := range particles {
		if err := c.Add(p); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Add inserts p.
// Complexity: O(1)
func (c *Collection) Add(p Particle) error {
	if p.Name == "" {
		return fmt.Errorf("%w: pid %d", ErrEmptyName, p.PID)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byName[p.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
	}
	if other, ok := c.byPID[p.PID]; ok {
		return fmt.Errorf("%w: %d used by %q and %q", ErrDuplicatePID, p.PID, other, p.Name)
	}
	c.byName[p.Name] = p
	c.byPID[p.PID] = p.Name

	return nil
}

// Find returns the particle with the given PID.
func (c *Collection) Find(pid int64) (Particle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.byPID[pid]
	if !ok {
		return Particle{}, fmt.Errorf("%w: pid %d", ErrParticleNotFound, pid)
	}

	return c.byName[name], nil
}

// FindByName returns the particle with the given name.
func (c *Collection) FindByName(name string) (Particle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byName[name]
	if !ok {
		return Particle{}, fmt.Errorf("%w: %q", ErrParticleNotFound, name)
	}

	return p, nil
}

// All returns every particle sorted by name.
// Complexity: O(n log n)
func (c *Collection) All() []Particle {
	return c.Filter(func(Particle) bool { return true })
}

// Filter returns the particles for which keep returns true, sorted by name.
func (c *Collection) Filter(keep func(Particle) bool) []Particle {
	c.mu.RLock()
	out := make([]Particle, 0, len(c.byName))
	for _, p := range c.byName {
		if keep(p) {
			out = append(out, p)
		}
	}
	c.mu.RUnlock()
	slices.SortFunc(out, func(a, b Particle) int { return strings.Compare(a.Name, b.Name) })

	return out
}

// Names returns all particle names in ascending order.
func (c *Collection) Names() []string {
	all := c.All()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}

	return names
}

// Len returns the number of particles.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.byName)
}
