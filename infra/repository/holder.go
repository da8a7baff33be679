package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/CaueSilva/bank-account-api/pkg/domain"
	repo "github.com/CaueSilva/bank-account-api/pkg/repository"
)

type holderRepository struct {
	db *gorm.DB
}

// NewHolderRepository creates a holder repository using the provided *gorm.DB.
func NewHolderRepository(db *gorm.DB) repo.HolderRepository {
	return &holderRepository{db: db}
}

func (r *holderRepository) Get(ctx context.Context, id int64) (*domain.Holder, error) {
	var m Holder
	if err := r.db.WithContext(ctx).First(&m, "holder_id = ?", id).Error; err != nil {
		return nil, translateNotFound(err, domain.ErrHolderNotFound)
	}
	return holderToDomain(&m), nil
}

func (r *holderRepository) GetByDocument(ctx context.Context, document string) ([]*domain.Holder, error) {
	var ms []Holder
	if err := r.db.WithContext(ctx).Where("document = ?", document).Find(&ms).Error; err != nil {
		return nil, err
	}
	holders := make([]*domain.Holder, 0, len(ms))
	for i := range ms {
		holders = append(holders, holderToDomain(&ms[i]))
	}
	return holders, nil
}

func (r *holderRepository) Create(ctx context.Context, holder *domain.Holder) error {
	m := holderToModel(holder)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	holder.ID = m.HolderID
	return nil
}

func (r *holderRepository) Update(ctx context.Context, holder *domain.Holder) error {
	return r.db.WithContext(ctx).
		Model(&Holder{}).
		Where("holder_id = ?", holder.ID).
		Update("name", holder.Name).Error
}

func (r *holderRepository) List(ctx context.Context, params repo.ListParams) ([]*domain.Holder, error) {
	var ms []Holder
	err := r.db.WithContext(ctx).
		Order("holder_id asc").
		Limit(params.Size).
		Offset(params.Offset()).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	holders := make([]*domain.Holder, 0, len(ms))
	for i := range ms {
		holders = append(holders, holderToDomain(&ms[i]))
	}
	return holders, nil
}

// translateNotFound maps gorm's record-not-found onto the domain kind for the
// entity; every other error passes through untouched.
func translateNotFound(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
