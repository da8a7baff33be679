package service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/CaueSilva/bank-account-api/pkg/domain"
	"github.com/CaueSilva/bank-account-api/pkg/repository"
)

// TransactionService moves money between accounts and records an immutable
// transaction for every balance change. Each operation runs inside a single
// unit of work: the balance mutations and the ledger record commit together
// or not at all.
type TransactionService struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewTransactionService creates a TransactionService.
func NewTransactionService(uow repository.UnitOfWork, logger *slog.Logger) *TransactionService {
	return &TransactionService{uow: uow, logger: logger}
}

// Deposit adds value to an active account and records a Deposit transaction.
func (s *TransactionService) Deposit(ctx context.Context, accountID int64, value decimal.Decimal) (tx *domain.Transaction, err error) {
	logger := s.logger.With("account_id", accountID, "value", value.StringFixed(2))
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts := uow.AccountRepository()
		account, err := accounts.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if err = account.Deposit(value); err != nil {
			return err
		}
		if err = accounts.Update(ctx, account); err != nil {
			return err
		}
		tx, err = domain.NewTransaction().
			WithType(domain.TypeDeposit).
			WithValue(value).
			WithOrigin(accountID).
			Build()
		if err != nil {
			return err
		}
		return uow.TransactionRepository().Create(ctx, tx)
	})
	if err != nil {
		logger.Error("deposit failed", "error", err)
		return nil, err
	}
	logger.Info("deposit made", "transaction_id", tx.ID)
	return tx, nil
}

// Withdraw removes value from an active account and records a Withdraw
// transaction. The account balance never goes negative: on insufficient
// balance nothing is persisted.
func (s *TransactionService) Withdraw(ctx context.Context, accountID int64, value decimal.Decimal) (tx *domain.Transaction, err error) {
	logger := s.logger.With("account_id", accountID, "value", value.StringFixed(2))
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts := uow.AccountRepository()
		account, err := accounts.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if err = account.Withdraw(value); err != nil {
			return err
		}
		if err = accounts.Update(ctx, account); err != nil {
			return err
		}
		tx, err = domain.NewTransaction().
			WithType(domain.TypeWithdraw).
			WithValue(value).
			WithOrigin(accountID).
			Build()
		if err != nil {
			return err
		}
		return uow.TransactionRepository().Create(ctx, tx)
	})
	if err != nil {
		logger.Error("withdraw failed", "error", err)
		return nil, err
	}
	logger.Info("withdraw made", "transaction_id", tx.ID)
	return tx, nil
}

// Transfer debits the origin account, credits the destination account and
// records a single Transfer transaction carrying both account ids. The whole
// sequence is one atomic unit; a failure at any step rolls everything back,
// so a half-applied transfer is never observable.
func (s *TransactionService) Transfer(ctx context.Context, originID, destinationID int64, value decimal.Decimal) (tx *domain.Transaction, err error) {
	logger := s.logger.With(
		"origin_account", originID,
		"destination_account", destinationID,
		"value", value.StringFixed(2),
	)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts := uow.AccountRepository()
		origin, destination, err := lockPair(ctx, accounts, originID, destinationID)
		if err != nil {
			return err
		}
		if err = domain.Transfer(origin, destination, value); err != nil {
			return err
		}
		if err = accounts.Update(ctx, origin); err != nil {
			return err
		}
		if err = accounts.Update(ctx, destination); err != nil {
			return err
		}
		tx, err = domain.NewTransaction().
			WithType(domain.TypeTransfer).
			WithValue(value).
			WithOrigin(originID).
			WithDestination(destinationID).
			Build()
		if err != nil {
			return err
		}
		return uow.TransactionRepository().Create(ctx, tx)
	})
	if err != nil {
		logger.Error("transfer failed", "error", err)
		return nil, err
	}
	logger.Info("transfer completed", "transaction_id", tx.ID)
	return tx, nil
}

// lockPair loads both accounts under row locks in ascending id order, so two
// transfers touching the same pair in opposite directions cannot deadlock.
func lockPair(ctx context.Context, accounts repository.AccountRepository, originID, destinationID int64) (origin, destination *domain.Account, err error) {
	if originID == destinationID {
		origin, err = accounts.GetForUpdate(ctx, originID)
		return origin, origin, err
	}
	firstID, secondID := originID, destinationID
	if secondID < firstID {
		firstID, secondID = secondID, firstID
	}
	first, err := accounts.GetForUpdate(ctx, firstID)
	if err != nil {
		return nil, nil, err
	}
	second, err := accounts.GetForUpdate(ctx, secondID)
	if err != nil {
		return nil, nil, err
	}
	if firstID == originID {
		return first, second, nil
	}
	return second, first, nil
}

// Get returns the transaction with the given id.
func (s *TransactionService) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.uow.TransactionRepository().Get(ctx, id)
}

// List returns one page of transactions ordered by date ascending. An empty
// page is reported as ErrTransactionNotFound, matching the API's established
// behavior.
func (s *TransactionService) List(ctx context.Context, params repository.ListParams) ([]*domain.Transaction, error) {
	transactions, err := s.uow.TransactionRepository().List(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, domain.ErrTransactionNotFound
	}
	return transactions, nil
}
