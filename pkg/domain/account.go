// Package domain holds the entities of the bank account service and the rules
// that govern them: the account status state machine, the balance mutation
// invariants and the immutable transaction ledger records.
package domain

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an account.
type Status int8

const (
	// StatusActive is the initial state; only active accounts move money.
	StatusActive Status = iota
	// StatusBlocked suspends money movement but can be reverted.
	StatusBlocked
	// StatusClosed is terminal; a closed account never changes again.
	StatusClosed
)

// String returns the API representation of the status.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusBlocked:
		return "BLOCKED"
	case StatusClosed:
		return "CLOSED"
	default:
		return fmt.Sprintf("Status(%d)", int8(s))
	}
}

// Valid reports whether s is one of the known states.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusBlocked, StatusClosed:
		return true
	default:
		return false
	}
}

// Value implements driver.Valuer so the status persists as its smallint code.
func (s Status) Value() (driver.Value, error) {
	return int64(s), nil
}

// Scan implements sql.Scanner.
func (s *Status) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*s = Status(v)
	case []byte:
		return fmt.Errorf("cannot scan %q into Status", v)
	default:
		return fmt.Errorf("cannot scan %T into Status", src)
	}
	if !s.Valid() {
		return fmt.Errorf("unknown account status code %d", int8(*s))
	}
	return nil
}

// Quantize rounds a monetary value to exactly two fractional digits.
func Quantize(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// Account is a balance-bearing entity owned by exactly one holder.
//
// Invariants:
//   - The balance never goes negative through Withdraw or Transfer.
//   - Balance mutations are only permitted while the account is active.
//   - A closed account never transitions again.
type Account struct {
	ID       int64
	HolderID int64
	Balance  decimal.Decimal
	Status   Status
}

// NewAccount creates an active account with a zero balance for the holder.
func NewAccount(holderID int64) *Account {
	return &Account{
		HolderID: holderID,
		Balance:  decimal.Zero.Round(2),
		Status:   StatusActive,
	}
}

// Open reports whether the account still counts against the
// one-open-account-per-holder rule.
func (a *Account) Open() bool {
	return a.Status != StatusClosed
}

// Block suspends the account. Fails on a closed account.
func (a *Account) Block() error {
	return a.transition(StatusBlocked)
}

// Reactivate puts the account back to active. Idempotent when already active,
// fails on a closed account.
func (a *Account) Reactivate() error {
	return a.transition(StatusActive)
}

// Close terminates the account. Fails when it is already closed.
func (a *Account) Close() error {
	return a.transition(StatusClosed)
}

func (a *Account) transition(to Status) error {
	switch a.Status {
	case StatusActive, StatusBlocked:
		a.Status = to
		return nil
	case StatusClosed:
		return ErrAccountClosed
	default:
		return fmt.Errorf("unknown account status %d: %w", int8(a.Status), ErrStatusNotAllowed)
	}
}

// Deposit adds value to the balance of an active account.
func (a *Account) Deposit(value decimal.Decimal) error {
	if a.Status != StatusActive {
		return ErrAccountNotActive
	}
	if !value.IsPositive() {
		return ErrValueNotPositive
	}
	a.Balance = Quantize(a.Balance.Add(Quantize(value)))
	return nil
}

// Withdraw removes value from the balance of an active account. The balance
// never goes below zero.
func (a *Account) Withdraw(value decimal.Decimal) error {
	if a.Status != StatusActive {
		return ErrAccountNotActive
	}
	if !value.IsPositive() {
		return ErrValueNotPositive
	}
	if value.GreaterThan(a.Balance) {
		return ErrBalanceTooLow
	}
	a.Balance = Quantize(a.Balance.Sub(Quantize(value)))
	return nil
}

// Transfer debits origin and credits destination. The checks run in a fixed
// order so error precedence is deterministic: origin active, destination
// active, then balance sufficiency.
func Transfer(origin, destination *Account, value decimal.Decimal) error {
	if origin.Status != StatusActive {
		return ErrOriginNotActive
	}
	if destination.Status != StatusActive {
		return ErrDestinationNotActive
	}
	if !value.IsPositive() {
		return ErrValueNotPositive
	}
	if value.GreaterThan(origin.Balance) {
		return ErrOriginBalanceTooLow
	}
	value = Quantize(value)
	origin.Balance = Quantize(origin.Balance.Sub(value))
	destination.Balance = Quantize(destination.Balance.Add(value))
	return nil
}
