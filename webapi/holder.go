package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/CaueSilva/bank-account-api/pkg/service"
)

// HolderRoutes registers the holder endpoints:
//   - POST /v1/holder      : create a holder.
//   - GET  /v1/holder      : list holders, paginated.
//   - GET  /v1/holder/:id  : fetch one holder.
//   - PUT  /v1/holder/:id  : rename a holder.
func HolderRoutes(app *fiber.App, svc *service.HolderService) {
	app.Post("/v1/holder", CreateHolder(svc))
	app.Get("/v1/holder", ListHolders(svc))
	app.Get("/v1/holder/:id", GetHolder(svc))
	app.Put("/v1/holder/:id", UpdateHolder(svc))
}

// CreateHolder returns the handler for POST /v1/holder.
func CreateHolder(svc *service.HolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[CreateHolderRequest](c)
		if input == nil {
			return err
		}
		holder, err := svc.Create(c.UserContext(), input.Name, input.Document)
		if err != nil {
			return ProblemDetailsJSON(c, "Failed to create holder", err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Holder created with success!", ToHolderDTO(holder))
	}
}

// GetHolder returns the handler for GET /v1/holder/:id.
func GetHolder(svc *service.HolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid holder ID", "holder ID must be a positive integer")
		}
		holder, err := svc.Get(c.UserContext(), int64(id))
		if err != nil {
			return ProblemDetailsJSON(c, "Failed to get holder", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Found holder by ID.", ToHolderDTO(holder))
	}
}

// UpdateHolder returns the handler for PUT /v1/holder/:id.
func UpdateHolder(svc *service.HolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid holder ID", "holder ID must be a positive integer")
		}
		input, err := BindAndValidate[UpdateHolderRequest](c)
		if input == nil {
			return err
		}
		holder, err := svc.UpdateName(c.UserContext(), int64(id), input.Name)
		if err != nil {
			return ProblemDetailsJSON(c, "Failed to update holder", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Holder updated with success!", ToHolderDTO(holder))
	}
}

// ListHolders returns the handler for GET /v1/holder.
func ListHolders(svc *service.HolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params, err := ParseListParams(c)
		if params == nil {
			return err
		}
		holders, err := svc.List(c.UserContext(), *params)
		if err != nil {
			return ProblemDetailsJSON(c, "Failed to list holders", err)
		}
		log.Infof("Found %d holders", len(holders))
		page := HolderListDTO{
			CurrentPage:     params.Page,
			MaxItemsPerPage: params.Size,
			Holders:         make([]HolderDTO, 0, len(holders)),
		}
		for _, h := range holders {
			page.Holders = append(page.Holders, ToHolderDTO(h))
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Holders found.", page)
	}
}
