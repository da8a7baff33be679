// Package service implements the application services for holders, accounts
// and transactions. Services receive already-validated, typed inputs from the
// web layer, run the domain rules inside unit-of-work boundaries and return
// entities or domain error kinds.
package service

import (
	"context"
	"log/slog"

	"github.com/CaueSilva/bank-account-api/pkg/domain"
	"github.com/CaueSilva/bank-account-api/pkg/repository"
)

// HolderService manages account holders.
type HolderService struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewHolderService creates a HolderService.
func NewHolderService(uow repository.UnitOfWork, logger *slog.Logger) *HolderService {
	return &HolderService{uow: uow, logger: logger}
}

// Create registers a new holder. The document must be unique across holders.
func (s *HolderService) Create(ctx context.Context, name, document string) (holder *domain.Holder, err error) {
	logger := s.logger.With("document", document)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		holders := uow.HolderRepository()
		existing, err := holders.GetByDocument(ctx, document)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return domain.ErrDocumentAlreadyExists
		}
		holder, err = domain.NewHolder(name, document)
		if err != nil {
			return err
		}
		return holders.Create(ctx, holder)
	})
	if err != nil {
		logger.Error("holder creation failed", "error", err)
		return nil, err
	}
	logger.Info("holder created", "holder_id", holder.ID)
	return holder, nil
}

// Get returns the holder with the given id.
func (s *HolderService) Get(ctx context.Context, id int64) (*domain.Holder, error) {
	return s.uow.HolderRepository().Get(ctx, id)
}

// UpdateName renames an existing holder, the only mutation holders support.
func (s *HolderService) UpdateName(ctx context.Context, id int64, name string) (holder *domain.Holder, err error) {
	logger := s.logger.With("holder_id", id)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		holders := uow.HolderRepository()
		holder, err = holders.Get(ctx, id)
		if err != nil {
			return err
		}
		if err = holder.Rename(name); err != nil {
			return err
		}
		return holders.Update(ctx, holder)
	})
	if err != nil {
		logger.Error("holder update failed", "error", err)
		return nil, err
	}
	logger.Info("holder updated")
	return holder, nil
}

// List returns one page of holders ordered by id ascending. An empty page is
// reported as ErrHolderNotFound, matching the API's established behavior.
func (s *HolderService) List(ctx context.Context, params repository.ListParams) ([]*domain.Holder, error) {
	holders, err := s.uow.HolderRepository().List(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(holders) == 0 {
		return nil, domain.ErrHolderNotFound
	}
	return holders, nil
}
