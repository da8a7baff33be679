// Package repository implements the data access contracts of pkg/repository
// on top of gorm and postgres.
package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/CaueSilva/bank-account-api/pkg/domain"
)

// Holder is the holders table row.
type Holder struct {
	HolderID int64  `gorm:"column:holder_id;primaryKey;autoIncrement"`
	Name     string `gorm:"column:name;not null"`
	Document string `gorm:"column:document;type:varchar(11);not null;uniqueIndex"`
}

// TableName specifies the table name for the Holder model.
func (Holder) TableName() string {
	return "holders"
}

// Account is the accounts table row. The status persists as its smallint
// code, as in the original schema.
type Account struct {
	AccountID int64           `gorm:"column:account_id;primaryKey;autoIncrement"`
	HolderID  int64           `gorm:"column:holder_id;index;not null"`
	Balance   decimal.Decimal `gorm:"column:balance;type:numeric(19,2);not null"`
	Status    domain.Status   `gorm:"column:status;type:smallint;not null"`
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// Transaction is the transactions table row. Rows are append-only.
type Transaction struct {
	TransactionID      string          `gorm:"column:transaction_id;type:varchar(36);primaryKey"`
	TransactionType    string          `gorm:"column:transaction_type;not null"`
	TransactionValue   decimal.Decimal `gorm:"column:transaction_value;type:numeric(19,2);not null"`
	TransactionDate    time.Time       `gorm:"column:transaction_date;index;not null"`
	OriginAccount      int64           `gorm:"column:origin_account;not null"`
	DestinationAccount *int64          `gorm:"column:destination_account"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Holder{}, &Account{}, &Transaction{})
}

func holderToDomain(m *Holder) *domain.Holder {
	return &domain.Holder{ID: m.HolderID, Name: m.Name, Document: m.Document}
}

func holderToModel(h *domain.Holder) Holder {
	return Holder{HolderID: h.ID, Name: h.Name, Document: h.Document}
}

func accountToDomain(m *Account) *domain.Account {
	return &domain.Account{
		ID:       m.AccountID,
		HolderID: m.HolderID,
		Balance:  m.Balance,
		Status:   m.Status,
	}
}

func accountToModel(a *domain.Account) Account {
	return Account{
		AccountID: a.ID,
		HolderID:  a.HolderID,
		Balance:   a.Balance,
		Status:    a.Status,
	}
}

func transactionToDomain(m *Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:                 m.TransactionID,
		Type:               domain.TransactionType(m.TransactionType),
		Value:              m.TransactionValue,
		Date:               m.TransactionDate,
		OriginAccount:      m.OriginAccount,
		DestinationAccount: m.DestinationAccount,
	}
}

func transactionToModel(t *domain.Transaction) Transaction {
	return Transaction{
		TransactionID:      t.ID,
		TransactionType:    string(t.Type),
		TransactionValue:   t.Value,
		TransactionDate:    t.Date,
		OriginAccount:      t.OriginAccount,
		DestinationAccount: t.DestinationAccount,
	}
}
