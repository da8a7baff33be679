// Package repository defines the data access contracts consumed by the
// services. Implementations live under infra/repository.
package repository

import (
	"context"
	"fmt"

	"github.com/CaueSilva/bank-account-api/pkg/domain"
)

const (
	// DefaultPage is the page used when the caller does not name one.
	DefaultPage = 1
	// DefaultPageSize is the page size used when the caller does not name one.
	DefaultPageSize = 50
	// MaxPageSize bounds how many rows a single listing may return.
	MaxPageSize = 50
)

// ListParams bounds a paginated listing. Listings are ordered by the natural
// key of the entity (ids ascending, transaction date ascending) so pages are
// stable between requests.
type ListParams struct {
	Page int
	Size int
}

// NewListParams validates page and size against the allowed bounds.
func NewListParams(page, size int) (ListParams, error) {
	if page < 1 {
		return ListParams{}, fmt.Errorf("currentPage must be greater than or equal 1: %w", domain.ErrValidation)
	}
	if size < 1 || size > MaxPageSize {
		return ListParams{}, fmt.Errorf("maxItemsPerPage must be greater than 0 and less or equal %d: %w", MaxPageSize, domain.ErrValidation)
	}
	return ListParams{Page: page, Size: size}, nil
}

// Offset returns the row offset for the page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Size
}

// HolderRepository is the holder store.
type HolderRepository interface {
	Get(ctx context.Context, id int64) (*domain.Holder, error)
	// GetByDocument returns every holder carrying the document. Uniqueness is
	// enforced by the service before creation.
	GetByDocument(ctx context.Context, document string) ([]*domain.Holder, error)
	// Create persists the holder and assigns its id.
	Create(ctx context.Context, holder *domain.Holder) error
	Update(ctx context.Context, holder *domain.Holder) error
	List(ctx context.Context, params ListParams) ([]*domain.Holder, error)
}

// AccountRepository is the account store.
type AccountRepository interface {
	Get(ctx context.Context, id int64) (*domain.Account, error)
	// GetForUpdate loads the account holding a row lock until the surrounding
	// unit of work commits. Balance mutations must load through it so two
	// concurrent movements cannot both pass a balance check on a stale value.
	GetForUpdate(ctx context.Context, id int64) (*domain.Account, error)
	ListByHolder(ctx context.Context, holderID int64) ([]*domain.Account, error)
	// Create persists the account and assigns its id.
	Create(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, account *domain.Account) error
	List(ctx context.Context, params ListParams) ([]*domain.Account, error)
}

// TransactionRepository is the append-only transaction ledger.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	Get(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context, params ListParams) ([]*domain.Transaction, error)
}
