// File: options.go
// Role: functional options for FindNodeSolutions.
// Contract:
//   - Option constructors panic on meaningless inputs.
//   - Later options override earlier ones.

package solving

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/qrules/settings"
)

// Defaults applied when no option overrides them.
const (
	DefaultChunkSize      = 256
	DefaultCandidateLimit = 1 << 20
)

// Option customizes FindNodeSolutions.
type Option func(*options)

type options struct {
	threads        int
	chunkSize      int
	candidateLimit int
	logger         *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{
		threads:        settings.AllCores,
		chunkSize:      DefaultChunkSize,
		candidateLimit: DefaultCandidateLimit,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.threads == settings.AllCores {
		o.threads = settings.NumberOfThreads()
	}

	return o
}

// WithThreads bounds the number of concurrent workers. 0 defers to
// settings.NumberOfThreads. Panics if n < 0.
func WithThreads(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("solving: WithThreads(%d): negative", n))
	}
	return func(o *options) { o.threads = n }
}

// WithChunkSize sets how many candidates one worker task evaluates.
// Panics if n < 1.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("solving: WithChunkSize(%d): must be positive", n))
	}
	return func(o *options) { o.chunkSize = n }
}

// WithCandidateLimit caps the domain product of a single node.
// Panics if n < 1.
func WithCandidateLimit(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("solving: WithCandidateLimit(%d): must be positive", n))
	}
	return func(o *options) { o.candidateLimit = n }
}

// WithLogger routes solver diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("solving: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}
