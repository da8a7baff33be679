package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CaueSilva/bank-account-api/pkg/domain"
	repo "github.com/CaueSilva/bank-account-api/pkg/repository"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository using the provided *gorm.DB.
func NewAccountRepository(db *gorm.DB) repo.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Get(ctx context.Context, id int64) (*domain.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "account_id = ?", id).Error; err != nil {
		return nil, translateNotFound(err, domain.ErrAccountNotFound)
	}
	return accountToDomain(&m), nil
}

// GetForUpdate loads the account with SELECT ... FOR UPDATE. The row stays
// locked until the surrounding transaction commits, serializing concurrent
// balance mutations against the same account.
func (r *accountRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	var m Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "account_id = ?", id).Error
	if err != nil {
		return nil, translateNotFound(err, domain.ErrAccountNotFound)
	}
	return accountToDomain(&m), nil
}

func (r *accountRepository) ListByHolder(ctx context.Context, holderID int64) ([]*domain.Account, error) {
	var ms []Account
	if err := r.db.WithContext(ctx).Where("holder_id = ?", holderID).Find(&ms).Error; err != nil {
		return nil, err
	}
	accounts := make([]*domain.Account, 0, len(ms))
	for i := range ms {
		accounts = append(accounts, accountToDomain(&ms[i]))
	}
	return accounts, nil
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	m := accountToModel(account)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	account.ID = m.AccountID
	return nil
}

func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	return r.db.WithContext(ctx).
		Model(&Account{}).
		Where("account_id = ?", account.ID).
		Updates(map[string]any{
			"balance": account.Balance,
			"status":  account.Status,
		}).Error
}

func (r *accountRepository) List(ctx context.Context, params repo.ListParams) ([]*domain.Account, error) {
	var ms []Account
	err := r.db.WithContext(ctx).
		Order("account_id asc").
		Limit(params.Size).
		Offset(params.Offset()).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	accounts := make([]*domain.Account, 0, len(ms))
	for i := range ms {
		accounts = append(accounts, accountToDomain(&ms[i]))
	}
	return accounts, nil
}
