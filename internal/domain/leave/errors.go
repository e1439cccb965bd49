package leave

import "errors"

var (
	ErrBalanceNotFound         = errors.New("leave balance not found")
	ErrRequestNotFound         = errors.New("leave request not found")
	ErrInsufficientBalance     = errors.New("insufficient leave balance")
	ErrRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidStatus           = errors.New("status must be Approved (1) or Rejected (2)")
)
