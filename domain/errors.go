package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")

	// ErrConfiguration aborts a run before any payment is attempted
	ErrConfiguration = errors.New("invalid configuration")

	// external system failures, per-call
	ErrExplorerUnavailable = errors.New("explorer unavailable")
	ErrChainUnavailable    = errors.New("chain unavailable")

	// per-payment outcomes, payment stays unmarked so the next run retries it
	ErrAttributionNotFound   = errors.New("token attribution not found")
	ErrCreatorNotFound       = errors.New("creator not found")
	ErrEconomicallyUnviable  = errors.New("share too small to cover gas")
	ErrBroadcastFailed       = errors.New("broadcast failed")
	ErrConfirmationTimeout   = errors.New("confirmation timeout")
	ErrSettlementReverted    = errors.New("settlement transaction reverted")
)
