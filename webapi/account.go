package webapi

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/CaueSilva/bank-account-api/pkg/domain"
	"github.com/CaueSilva/bank-account-api/pkg/service"
)

// AccountRoutes registers the account endpoints:
//   - POST /v1/account                : open an account for a holder.
//   - GET  /v1/account                : list accounts, paginated.
//   - GET  /v1/account/:id            : fetch one account.
//   - POST /v1/account/:id/block      : block the account.
//   - POST /v1/account/:id/reactivate : reactivate the account.
//   - POST /v1/account/:id/close      : close the account, terminally.
func AccountRoutes(app *fiber.App, svc *service.AccountService) {
	app.Post("/v1/account", OpenAccount(svc))
	app.Get("/v1/account", ListAccounts(svc))
	app.Get("/v1/account/:id", GetAccount(svc))
	app.Post("/v1/account/:id/block", ChangeAccountStatus(svc.Block, "Account blocked."))
	app.Post("/v1/account/:id/reactivate", ChangeAccountStatus(svc.Reactivate, "Account reactivated."))
	app.Post("/v1/account/:id/close", ChangeAccountStatus(svc.Close, "Account closed."))
}

// OpenAccount returns the handler for POST /v1/account.
func OpenAccount(svc *service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[OpenAccountRequest](c)
		if input == nil {
			return err
		}
		account, err := svc.Open(c.UserContext(), input.HolderID)
		if err != nil {
			return ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Account created with success!", ToAccountDTO(account))
	}
}

// GetAccount returns the handler for GET /v1/account/:id.
func GetAccount(svc *service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", "account ID must be a positive integer")
		}
		account, err := svc.Get(c.UserContext(), int64(id))
		if err != nil {
			return ProblemDetailsJSON(c, "Failed to get account", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Found account by ID.", ToAccountDTO(account))
	}
}

// ListAccounts returns the handler for GET /v1/account.
func ListAccounts(svc *service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params, err := ParseListParams(c)
		if params == nil {
			return err
		}
		accounts, err := svc.List(c.UserContext(), *params)
		if err != nil {
			return ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		page := AccountListDTO{
			CurrentPage:     params.Page,
			MaxItemsPerPage: params.Size,
			Accounts:        make([]AccountDTO, 0, len(accounts)),
		}
		for _, a := range accounts {
			page.Accounts = append(page.Accounts, ToAccountDTO(a))
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Accounts found.", page)
	}
}

// ChangeAccountStatus returns a handler running one of the status transitions
// (block, reactivate, close) and answering with the updated account view.
func ChangeAccountStatus(
	transition func(ctx context.Context, id int64) (*domain.Account, error),
	message string,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", "account ID must be a positive integer")
		}
		account, err := transition(c.UserContext(), int64(id))
		if err != nil {
			return ProblemDetailsJSON(c, "Failed to change account status", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, message, ToAccountDTO(account))
	}
}
