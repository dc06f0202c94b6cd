package particle

import "errors"

// Sentinel errors for particle definitions and collections.
var (
	// ErrEmptyName indicates a particle without a name.
	ErrEmptyName = errors.New("particle: empty name")

	// ErrDuplicateName indicates that a particle name is already taken.
	ErrDuplicateName = errors.New("particle: duplicate name")

	// ErrDuplicatePID indicates that a PID is already taken.
	ErrDuplicatePID = errors.New("particle: duplicate pid")

	// ErrParticleNotFound indicates a failed lookup.
	ErrParticleNotFound = errors.New("particle: not found")

	// ErrInvalidDefinition indicates a malformed or inconsistent YAML entry.
	ErrInvalidDefinition = errors.New("particle: invalid definition")
)
