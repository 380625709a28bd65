package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors:
//   - ErrNotFound: row does not exist (group, request, or ledger entry)
//   - ErrConflict: a uniqueness constraint rejected the write
//   - ErrInvalidState: row is in the wrong state for the requested transition
//   - ErrLimitExceeded: a bounded counter would leave its allowed range
//   - ErrUnavailable: backing service temporarily unavailable
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrInvalidState  = errors.New("invalid state")
	ErrLimitExceeded = errors.New("limit exceeded")
	ErrUnavailable   = errors.New("unavailable")
)
