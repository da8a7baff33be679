package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType identifies the kind of money movement.
type TransactionType string

const (
	TypeDeposit  TransactionType = "DEPOSIT"
	TypeWithdraw TransactionType = "WITHDRAW"
	TypeTransfer TransactionType = "TRANSFER"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeDeposit, TypeWithdraw, TypeTransfer:
		return true
	default:
		return false
	}
}

// Transaction is an immutable ledger record for a balance-affecting event.
// Records are append-only: they are never updated or deleted after creation.
type Transaction struct {
	ID                 string // 36-char UUID token, opaque to callers
	Type               TransactionType
	Value              decimal.Decimal
	Date               time.Time
	OriginAccount      int64
	DestinationAccount *int64 // set only for transfers
}

// TransactionBuilder assembles a Transaction, assigning a fresh identifier and
// the creation timestamp up front.
type TransactionBuilder struct {
	tx Transaction
}

// NewTransaction starts a builder with a generated id and the current time.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{tx: Transaction{
		ID:   uuid.NewString(),
		Date: time.Now(),
	}}
}

// WithType sets the transaction type.
func (b *TransactionBuilder) WithType(t TransactionType) *TransactionBuilder {
	b.tx.Type = t
	return b
}

// WithValue sets the transaction value, quantized to two decimals.
func (b *TransactionBuilder) WithValue(v decimal.Decimal) *TransactionBuilder {
	b.tx.Value = Quantize(v)
	return b
}

// WithOrigin sets the account the movement originates from.
func (b *TransactionBuilder) WithOrigin(accountID int64) *TransactionBuilder {
	b.tx.OriginAccount = accountID
	return b
}

// WithDestination sets the receiving account of a transfer.
func (b *TransactionBuilder) WithDestination(accountID int64) *TransactionBuilder {
	b.tx.DestinationAccount = &accountID
	return b
}

// Build validates the record and returns it.
func (b *TransactionBuilder) Build() (*Transaction, error) {
	if !b.tx.Type.Valid() {
		return nil, errors.New("transaction type is required")
	}
	if !b.tx.Value.IsPositive() {
		return nil, ErrValueNotPositive
	}
	if b.tx.OriginAccount == 0 {
		return nil, errors.New("origin account is required")
	}
	if b.tx.Type == TypeTransfer && b.tx.DestinationAccount == nil {
		return nil, errors.New("destination account is required for transfers")
	}
	if b.tx.Type != TypeTransfer && b.tx.DestinationAccount != nil {
		return nil, errors.New("destination account is only set for transfers")
	}
	tx := b.tx
	return &tx, nil
}
