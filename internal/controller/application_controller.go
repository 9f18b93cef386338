package controller

import (
	"hireflow-be/internal/dto"
	"hireflow-be/internal/pkg/serverutils"
	"hireflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IApplicationController interface {
	RegisterRoutes(r fiber.Router)
	Finalize(ctx *fiber.Ctx) error
}

type applicationController struct {
	scoringService service.IScoringService
}

func NewApplicationController(scoringService service.IScoringService) IApplicationController {
	return &applicationController{
		scoringService: scoringService,
	}
}

func (c *applicationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/application/v1")
	h.Post("finalize", c.Finalize)
}

func (c *applicationController) Finalize(ctx *fiber.Ctx) error {
	var req dto.FinalizeScoreRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.scoringService.Finalize(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success finalize application score", res))
}
