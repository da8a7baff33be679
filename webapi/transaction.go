package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CaueSilva/bank-account-api/pkg/service"
)

// TransactionRoutes registers the money movement and ledger endpoints:
//   - POST /v1/transactions/deposit  : deposit into an account.
//   - POST /v1/transactions/withdraw : withdraw from an account.
//   - POST /v1/transactions/transfer : transfer between two accounts.
//   - GET  /v1/transactions          : list transactions, paginated.
//   - GET  /v1/transactions/:id      : fetch one transaction.
func TransactionRoutes(app *fiber.App, svc *service.TransactionService) {
	app.Post("/v1/transactions/deposit", Deposit(svc))
	app.Post("/v1/transactions/withdraw", Withdraw(svc))
	app.Post("/v1/transactions/transfer", Transfer(svc))
	app.Get("/v1/transactions", ListTransactions(svc))
	app.Get("/v1/transactions/:id", GetTransaction(svc))
}

// Deposit returns the handler for POST /v1/transactions/deposit.
func Deposit(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[OperationRequest](c)
		if input == nil {
			return err
		}
		if !input.Value.IsPositive() {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", "value must be greater than 0")
		}
		tx, err := svc.Deposit(c.UserContext(), input.AccountID, input.Value)
		if err != nil {
			return ProblemDetailsJSON(c, "Failed to deposit", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Deposit made successfully!", ToTransactionDTO(tx))
	}
}

// Withdraw returns the handler for POST /v1/transactions/withdraw.
func Withdraw(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[OperationRequest](c)
		if input == nil {
			return err
		}
		if !input.Value.IsPositive() {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", "value must be greater than 0")
		}
		tx, err := svc.Withdraw(c.UserContext(), input.AccountID, input.Value)
		if err != nil {
			return ProblemDetailsJSON(c, "Failed to withdraw", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Withdraw made successfully!", ToTransactionDTO(tx))
	}
}

// Transfer returns the handler for POST /v1/transactions/transfer.
func Transfer(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[TransferRequest](c)
		if input == nil {
			return err
		}
		if !input.Value.IsPositive() {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", "value must be greater than 0")
		}
		tx, err := svc.Transfer(c.UserContext(), input.OriginAccountID, input.DestinationAccountID, input.Value)
		if err != nil {
			return ProblemDetailsJSON(c, "Failed to transfer", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transfer completed with success.", ToTransactionDTO(tx))
	}
}

// GetTransaction returns the handler for GET /v1/transactions/:id.
func GetTransaction(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tx, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return ProblemDetailsJSON(c, "Failed to get transaction", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Found transaction by ID.", ToTransactionDTO(tx))
	}
}

// ListTransactions returns the handler for GET /v1/transactions.
func ListTransactions(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params, err := ParseListParams(c)
		if params == nil {
			return err
		}
		transactions, err := svc.List(c.UserContext(), *params)
		if err != nil {
			return ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		page := TransactionListDTO{
			CurrentPage:     params.Page,
			MaxItemsPerPage: params.Size,
			Transactions:    make([]TransactionDTO, 0, len(transactions)),
		}
		for _, t := range transactions {
			page.Transactions = append(page.Transactions, ToTransactionDTO(t))
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transactions found.", page)
	}
}
