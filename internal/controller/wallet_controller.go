package controller

import (
	"hireflow-be/internal/dto"
	"hireflow-be/internal/pkg/serverutils"
	"hireflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWalletController interface {
	RegisterRoutes(r fiber.Router)
	Balance(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	UnlockAssessment(ctx *fiber.Ctx) error
}

type walletController struct {
	walletService service.IWalletService
}

func NewWalletController(walletService service.IWalletService) IWalletController {
	return &walletController{
		walletService: walletService,
	}
}

func (c *walletController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wallet/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("balance", c.Balance)
	h.Get("history", c.History)
	h.Post("unlock-assessment", c.UnlockAssessment)
}

func (c *walletController) UnlockAssessment(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return serverutils.BadRequest("invalid user id in token")
	}

	var req dto.UnlockAssessmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.walletService.UnlockAssessment(ctx.Context(), userId, req.PositionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success unlock assessment", res))
}

func (c *walletController) Balance(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return serverutils.BadRequest("invalid user id in token")
	}

	res, err := c.walletService.Balance(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get wallet balance", res))
}

func (c *walletController) History(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return serverutils.BadRequest("invalid user id in token")
	}

	res, err := c.walletService.History(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get wallet history", res))
}
