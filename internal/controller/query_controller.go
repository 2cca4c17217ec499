package controller

import (
	"kinhdich-rag-be/internal/dto"
	"kinhdich-rag-be/internal/pkg/serverutils"
	"kinhdich-rag-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQueryController interface {
	RegisterRoutes(r fiber.Router)
	Query(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type queryController struct {
	queryService service.IQueryService
}

func NewQueryController(queryService service.IQueryService) IQueryController {
	return &queryController{
		queryService: queryService,
	}
}

func (c *queryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/oracle/v1")
	h.Post("query", c.Query)
	h.Get("health", c.Health)
}

func (c *queryController) Query(ctx *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.queryService.ProcessQuery(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Query processed", res))
}

func (c *queryController) Health(ctx *fiber.Ctx) error {
	res := c.queryService.Health(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Health status", res))
}
