package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/CaueSilva/bank-account-api/pkg/domain"
	repo "github.com/CaueSilva/bank-account-api/pkg/repository"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a transaction repository using the provided *gorm.DB.
func NewTransactionRepository(db *gorm.DB) repo.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create appends a transaction to the ledger. There is no update or delete:
// records are immutable after creation.
func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	m := transactionToModel(tx)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *transactionRepository) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	var m Transaction
	if err := r.db.WithContext(ctx).First(&m, "transaction_id = ?", id).Error; err != nil {
		return nil, translateNotFound(err, domain.ErrTransactionNotFound)
	}
	return transactionToDomain(&m), nil
}

func (r *transactionRepository) List(ctx context.Context, params repo.ListParams) ([]*domain.Transaction, error) {
	var ms []Transaction
	err := r.db.WithContext(ctx).
		Order("transaction_date asc").
		Limit(params.Size).
		Offset(params.Offset()).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	transactions := make([]*domain.Transaction, 0, len(ms))
	for i := range ms {
		transactions = append(transactions, transactionToDomain(&ms[i]))
	}
	return transactions, nil
}
