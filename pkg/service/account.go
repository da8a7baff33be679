package service

import (
	"context"
	"log/slog"

	"github.com/CaueSilva/bank-account-api/pkg/domain"
	"github.com/CaueSilva/bank-account-api/pkg/repository"
)

// AccountService manages account lifecycle: opening and status transitions.
type AccountService struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewAccountService creates an AccountService.
func NewAccountService(uow repository.UnitOfWork, logger *slog.Logger) *AccountService {
	return &AccountService{uow: uow, logger: logger}
}

// Open creates a new active account with a zero balance for the holder.
// A holder may own many accounts over time but at most one that is not
// closed, so opening fails while any previous account remains open.
func (s *AccountService) Open(ctx context.Context, holderID int64) (account *domain.Account, err error) {
	logger := s.logger.With("holder_id", holderID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.HolderRepository().Get(ctx, holderID); err != nil {
			return err
		}
		accounts := uow.AccountRepository()
		existing, err := accounts.ListByHolder(ctx, holderID)
		if err != nil {
			return err
		}
		for _, a := range existing {
			if a.Open() {
				return domain.ErrAccountAlreadyExists
			}
		}
		account = domain.NewAccount(holderID)
		return accounts.Create(ctx, account)
	})
	if err != nil {
		logger.Error("account opening failed", "error", err)
		return nil, err
	}
	logger.Info("account opened", "account_id", account.ID)
	return account, nil
}

// Get returns the account with the given id.
func (s *AccountService) Get(ctx context.Context, id int64) (*domain.Account, error) {
	return s.uow.AccountRepository().Get(ctx, id)
}

// List returns one page of accounts ordered by id ascending. An empty page is
// reported as ErrAccountNotFound, matching the API's established behavior.
func (s *AccountService) List(ctx context.Context, params repository.ListParams) ([]*domain.Account, error) {
	accounts, err := s.uow.AccountRepository().List(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, domain.ErrAccountNotFound
	}
	return accounts, nil
}

// Block suspends the account.
func (s *AccountService) Block(ctx context.Context, id int64) (*domain.Account, error) {
	return s.changeStatus(ctx, id, (*domain.Account).Block, "account blocked")
}

// Reactivate puts a blocked account back to active.
func (s *AccountService) Reactivate(ctx context.Context, id int64) (*domain.Account, error) {
	return s.changeStatus(ctx, id, (*domain.Account).Reactivate, "account reactivated")
}

// Close terminates the account. Closed is terminal: no later transition,
// block or reactivation will ever succeed.
func (s *AccountService) Close(ctx context.Context, id int64) (*domain.Account, error) {
	return s.changeStatus(ctx, id, (*domain.Account).Close, "account closed")
}

// changeStatus loads the account under a row lock, applies the transition and
// persists the new status before the updated view is returned.
func (s *AccountService) changeStatus(
	ctx context.Context,
	id int64,
	transition func(*domain.Account) error,
	msg string,
) (account *domain.Account, err error) {
	logger := s.logger.With("account_id", id)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts := uow.AccountRepository()
		account, err = accounts.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err = transition(account); err != nil {
			return err
		}
		return accounts.Update(ctx, account)
	})
	if err != nil {
		logger.Error("status change failed", "error", err)
		return nil, err
	}
	logger.Info(msg, "status", account.Status.String())
	return account, nil
}
