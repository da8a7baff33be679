package webapi

import (
	"github.com/shopspring/decimal"

	"github.com/CaueSilva/bank-account-api/pkg/domain"
)

// dateLayout is the wire format of transaction timestamps.
const dateLayout = "2006-01-02T15:04:05"

//revive:disable

// CreateHolderRequest is the body of POST /v1/holder.
type CreateHolderRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Document string `json:"document" validate:"required,len=11"`
}

// UpdateHolderRequest is the body of PUT /v1/holder/:id.
type UpdateHolderRequest struct {
	Name string `json:"name" validate:"required,min=3"`
}

// OpenAccountRequest is the body of POST /v1/account.
type OpenAccountRequest struct {
	HolderID int64 `json:"holder_id" validate:"required,gt=0"`
}

// OperationRequest is the body of deposit and withdraw requests. The value is
// decoded straight into a decimal so no binary floating point touches it.
type OperationRequest struct {
	AccountID int64           `json:"account_id" validate:"required,gt=0"`
	Value     decimal.Decimal `json:"value"`
}

// TransferRequest is the body of POST /v1/transactions/transfer. The origin
// field keeps the name the API has always used.
type TransferRequest struct {
	OriginAccountID      int64           `json:"original_account_id" validate:"required,gt=0"`
	DestinationAccountID int64           `json:"destination_account_id" validate:"required,gt=0"`
	Value                decimal.Decimal `json:"value"`
}

// HolderDTO is the API representation of a holder.
type HolderDTO struct {
	HolderID int64  `json:"holder_id"`
	Name     string `json:"name"`
	Document string `json:"document"`
}

// AccountDTO is the API representation of an account. The balance is a
// two-decimal string so clients never see float artifacts.
type AccountDTO struct {
	AccountID int64  `json:"account_id"`
	HolderID  int64  `json:"holder_id"`
	Balance   string `json:"balance"`
	Status    string `json:"status"`
}

// TransactionDTO is the API representation of a ledger record.
type TransactionDTO struct {
	TransactionID      string `json:"transaction_id"`
	TransactionType    string `json:"transaction_type"`
	TransactionValue   string `json:"transaction_value"`
	TransactionDate    string `json:"transaction_date"`
	OriginAccount      int64  `json:"origin_account"`
	DestinationAccount *int64 `json:"destination_account,omitempty"`
}

// HolderListDTO is one page of holders plus the echoed pagination parameters.
type HolderListDTO struct {
	CurrentPage     int         `json:"currentPage"`
	MaxItemsPerPage int         `json:"maxItemsPerPage"`
	Holders         []HolderDTO `json:"holders"`
}

// AccountListDTO is one page of accounts plus the echoed pagination parameters.
type AccountListDTO struct {
	CurrentPage     int          `json:"currentPage"`
	MaxItemsPerPage int          `json:"maxItemsPerPage"`
	Accounts        []AccountDTO `json:"accounts"`
}

// TransactionListDTO is one page of transactions plus the echoed pagination parameters.
type TransactionListDTO struct {
	CurrentPage     int              `json:"currentPage"`
	MaxItemsPerPage int              `json:"maxItemsPerPage"`
	Transactions    []TransactionDTO `json:"transactions"`
}

//revive:enable

// ToHolderDTO maps a holder entity to its API representation.
func ToHolderDTO(h *domain.Holder) HolderDTO {
	return HolderDTO{HolderID: h.ID, Name: h.Name, Document: h.Document}
}

// ToAccountDTO maps an account entity to its API representation.
func ToAccountDTO(a *domain.Account) AccountDTO {
	return AccountDTO{
		AccountID: a.ID,
		HolderID:  a.HolderID,
		Balance:   a.Balance.StringFixed(2),
		Status:    a.Status.String(),
	}
}

// ToTransactionDTO maps a transaction entity to its API representation.
func ToTransactionDTO(t *domain.Transaction) TransactionDTO {
	return TransactionDTO{
		TransactionID:      t.ID,
		TransactionType:    string(t.Type),
		TransactionValue:   t.Value.StringFixed(2),
		TransactionDate:    t.Date.Format(dateLayout),
		OriginAccount:      t.OriginAccount,
		DestinationAccount: t.DestinationAccount,
	}
}
