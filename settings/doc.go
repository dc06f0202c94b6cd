// Package settings builds the per-interaction-type solving settings: which
// conservation rules apply, in which order they run, and the finite domain
// every quantum number is searched over.
//
// What:
//
//   - CreateInteractionSettings(formalism, db, opts...) returns one
//     InteractionSettings (edge + node settings) per InteractionType.
//     WEAK is the minimal rule set, EM adds to WEAK, STRONG adds to EM;
//     each layer is Derived from a deep copy of the previous one.
//   - Priorities: a higher priority runs first. Priorities only order the
//     evaluation; they never change which assignments are accepted.
//   - Domain: sorted, deduplicated values, optionally "undefined" (None).
//   - NumberOfThreads / SetNumberOfThreads: process-wide worker count read
//     by the solver at dispatch time.
//   - Config: YAML form of the construction arguments for the CLI.
//
// Determinism:
//
//   - Rule lists, domain listings and the String rendering are sorted.
//
// Concurrency:
//
//   - Settings values returned by CreateInteractionSettings share no maps
//     with each other and may be read concurrently. Mutate only Clones.
//   - The thread-count setting is an atomic.
//
// Errors:
//
//	ErrUnknownFormalism        - formalism is not helicity, canonical or canonical-helicity.
//	ErrNilParticleDB           - no particle collection to derive domains from.
//	ErrUnknownInteractionType  - interaction type name could not be parsed.
//	ErrInvalidThreadCount      - negative thread count.
//	ErrInvalidConfig           - YAML configuration failed decoding or validation.
package settings
