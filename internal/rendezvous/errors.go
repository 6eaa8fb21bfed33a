package rendezvous

import "errors"

// ErrNonFiniteState indicates a body state with NaN or Inf components.
var ErrNonFiniteState = errors.New("rendezvous: non-finite body state")
