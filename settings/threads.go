package settings

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// AllCores requests one worker per available CPU.
const AllCores = 0

// threads holds the pinned worker count; AllCores means unset.
var threads atomic.Int64

// NumberOfThreads returns the configured worker count, or runtime.NumCPU()
// when none is pinned.
func NumberOfThreads() int {
	if n := threads.Load(); n > 0 {
		return int(n)
	}

	return runtime.NumCPU()
}

// SetNumberOfThreads pins the worker count; AllCores unpins it.
func SetNumberOfThreads(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidThreadCount, n)
	}
	threads.Store(int64(n))

	return nil
}

// ResetNumberOfThreads restores the default of all available cores.
func ResetNumberOfThreads() { threads.Store(AllCores) }
