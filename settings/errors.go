package settings

import "errors"

// Sentinel errors for settings construction and configuration.
var (
	// ErrUnknownFormalism indicates an unsupported spin formalism.
	ErrUnknownFormalism = errors.New("settings: unknown formalism")

	// ErrNilParticleDB indicates a missing particle collection.
	ErrNilParticleDB = errors.New("settings: nil particle collection")

	// ErrUnknownInteractionType indicates an unparsable interaction type.
	ErrUnknownInteractionType = errors.New("settings: unknown interaction type")

	// ErrInvalidThreadCount indicates a negative number of threads.
	ErrInvalidThreadCount = errors.New("settings: invalid thread count")

	// ErrInvalidConfig indicates a malformed configuration file.
	ErrInvalidConfig = errors.New("settings: invalid config")
)
