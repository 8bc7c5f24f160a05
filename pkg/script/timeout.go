package script

import (
	"fmt"
	"sync"
	"time"

	"github.com/mttstwrt/measurementtools/pkg/selection"
)

// EvalTimeout is the hard limit for a single evaluation.
const EvalTimeout = 5 * time.Second

type evalResult struct {
	sel    *selection.Selection
	errors []EvalError
	err    error
}

// waitWithTimeout waits for the result of evaluation gen. A result that
// arrives after a newer evaluation started is discarded. On timeout the
// evaluating goroutine keeps running; its late result goes unread.
func waitWithTimeout(
	ch <-chan evalResult,
	gen uint64,
	mu *sync.Mutex,
	currentGen *uint64,
) (*selection.Selection, []EvalError, error) {
	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		mu.Lock()
		current := *currentGen
		mu.Unlock()

		if gen != current {
			return nil, nil, fmt.Errorf("evaluation superseded by newer request")
		}
		return res.sel, res.errors, res.err

	case <-timer.C:
		return nil, nil, fmt.Errorf("evaluation timed out after %s", EvalTimeout)
	}
}
