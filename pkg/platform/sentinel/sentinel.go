package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and external adapters return
// these (optionally wrapped) so services can translate them into domain errors.
//
//   - ErrNotFound: entity does not exist in store
//   - ErrAlreadyUsed: a unique key (farm id, farm name) is already taken
//   - ErrInsufficientFunds: the payer cannot cover a transfer
//   - ErrUnavailable: backing service temporarily unreachable
//
// For validation errors use pkg/domain-errors directly.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyUsed       = errors.New("already used")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnavailable       = errors.New("unavailable")
)
