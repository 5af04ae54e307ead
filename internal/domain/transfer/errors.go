package domain_transfer

import "errors"

var (
	ErrInvalidTransferID = errors.New("transfer: invalid transfer_id")
	ErrInvalidAccountID  = errors.New("transfer: invalid account_id")
	ErrInvalidAmount     = errors.New("transfer: amount must be > 0")

	ErrInvalidStateTransition = errors.New("transfer: invalid state transition")
	ErrAlreadyFinalized       = errors.New("transfer: continuation already finalized")
	ErrMissingFailureReason   = errors.New("transfer: failure_reason is required")
)
