package solving

import "errors"

// Sentinel errors for problem validation and solving.
var (
	// ErrNilTopology indicates a Problem without a topology.
	ErrNilTopology = errors.New("solving: nil topology")

	// ErrInvalidTopology indicates that the topology failed Verify.
	ErrInvalidTopology = errors.New("solving: invalid topology")

	// ErrRuleKindMismatch indicates a rule placed in settings of the wrong
	// element type, e.g. a node rule in edge settings.
	ErrRuleKindMismatch = errors.New("solving: rule kind does not fit element")

	// ErrCandidateLimit indicates a node whose domain product exceeds the
	// configured candidate limit.
	ErrCandidateLimit = errors.New("solving: too many candidates")
)
