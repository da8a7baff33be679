package repository

import "context"

// UnitOfWork provides transaction boundaries and repository access bound to
// the same database session, so a multi-step write (debit origin, credit
// destination, record transaction) commits or rolls back as one unit.
//
// Outside Do the repositories run against the plain connection; inside Do
// they run against the open transaction. Nothing written inside Do is visible
// to other readers until the function returns nil and the transaction commits.
type UnitOfWork interface {
	// Do executes fn inside a transaction boundary. If fn returns an error the
	// transaction is rolled back and the error is returned unchanged.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	HolderRepository() HolderRepository
	AccountRepository() AccountRepository
	TransactionRepository() TransactionRepository
}
