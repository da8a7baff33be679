package domain

import (
	"errors"
	"fmt"
)

// Error kinds returned by the domain and the services. Handlers match on the
// base sentinels with errors.Is; the wrapped variants carry the operation
// specific message.
var (
	// ErrHolderNotFound is returned when a holder cannot be found.
	ErrHolderNotFound = errors.New("holder not found")
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrTransactionNotFound is returned when a transaction cannot be found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDocumentAlreadyExists is returned when creating a holder with a document
	// that already belongs to another holder.
	ErrDocumentAlreadyExists = errors.New("document already exists")

	// ErrAccountAlreadyExists is returned when a holder already has an account
	// that is not closed.
	ErrAccountAlreadyExists = errors.New("holder already has an open account")

	// ErrStatusNotAllowed is the base kind for every illegal status check.
	ErrStatusNotAllowed = errors.New("status not allowed")

	// ErrAccountClosed is returned on any status transition of a closed account.
	ErrAccountClosed = fmt.Errorf("account is already closed: %w", ErrStatusNotAllowed)
	// ErrAccountNotActive is returned when money is moved on a non-active account.
	ErrAccountNotActive = fmt.Errorf("account is not active: %w", ErrStatusNotAllowed)
	// ErrOriginNotActive is returned when the origin account of a transfer is not active.
	ErrOriginNotActive = fmt.Errorf("origin account is not active: %w", ErrStatusNotAllowed)
	// ErrDestinationNotActive is returned when the destination account of a transfer is not active.
	ErrDestinationNotActive = fmt.Errorf("destination account is not active: %w", ErrStatusNotAllowed)

	// ErrInsufficientBalance is the base kind for overdraft attempts.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrBalanceTooLow is returned when a withdraw exceeds the account balance.
	ErrBalanceTooLow = fmt.Errorf("account doesn't have enough balance to complete operation: %w", ErrInsufficientBalance)
	// ErrOriginBalanceTooLow is returned when a transfer exceeds the origin account balance.
	ErrOriginBalanceTooLow = fmt.Errorf("origin account doesn't have enough balance to complete operation: %w", ErrInsufficientBalance)

	// ErrValueNotPositive is returned when a transaction value is zero or negative.
	ErrValueNotPositive = errors.New("transaction value must be positive")

	// ErrValidation is returned when input validation fails.
	ErrValidation = errors.New("validation error")
)
