// Package particle holds particle definitions and a name/PID indexed
// collection of them.
//
// What:
//
//   - Particle: static quantum numbers of one state (mass, width, spin,
//     charge, isospin, flavour and lepton numbers, P/C/G parities).
//   - Collection: thread-safe set of particles, unique by name and by PID,
//     with deterministic (name-sorted) listing.
//   - LoadYAML / LoadFile / DumpYAML: the ParticleList YAML format.
//   - Default: an embedded list of common leptons, mesons and baryons.
//   - EdgeProperties / StateProperties: a particle as a raw edge assignment
//     accepted by the conservation rules.
//
// Errors:
//
//	ErrEmptyName         - particle without a name.
//	ErrDuplicateName     - a particle with that name is already present.
//	ErrDuplicatePID      - a particle with that PID is already present.
//	ErrParticleNotFound  - lookup by name or PID failed.
//	ErrInvalidDefinition - YAML entry failed decoding or validation.
package particle
