package repository

import (
	"context"

	"gorm.io/gorm"

	repo "github.com/CaueSilva/bank-account-api/pkg/repository"
)

// UoW provides transaction boundaries and repository access in one
// abstraction. Repositories obtained inside Do are bound to the open
// transaction, so a multi-step write (the debit, credit and ledger record of
// a transfer) commits atomically; repositories obtained outside Do run
// against the plain connection.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn in a database transaction, providing a UoW bound to it.
func (u *UoW) Do(ctx context.Context, fn func(uow repo.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// session returns the open transaction when inside Do, the connection otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// HolderRepository returns a holder repository bound to the current session.
func (u *UoW) HolderRepository() repo.HolderRepository {
	return NewHolderRepository(u.session())
}

// AccountRepository returns an account repository bound to the current session.
func (u *UoW) AccountRepository() repo.AccountRepository {
	return NewAccountRepository(u.session())
}

// TransactionRepository returns a transaction repository bound to the current session.
func (u *UoW) TransactionRepository() repo.TransactionRepository {
	return NewTransactionRepository(u.session())
}
