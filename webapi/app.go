package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/CaueSilva/bank-account-api/pkg/service"
)

// Services bundles the application services the API exposes.
type Services struct {
	Holder      *service.HolderService
	Account     *service.AccountService
	Transaction *service.TransactionService
}

// New builds the fiber application with all routes and middleware.
func New(svcs Services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "bank-account-api",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working!")
	})

	HolderRoutes(app, svcs.Holder)
	AccountRoutes(app, svcs.Account)
	TransactionRoutes(app, svcs.Transaction)

	return app
}
