package controller

import (
	"hireflow-be/internal/dto"
	"hireflow-be/internal/pkg/serverutils"
	"hireflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInterviewController interface {
	RegisterRoutes(r fiber.Router)
	StartSession(ctx *fiber.Ctx) error
	AdvanceSession(ctx *fiber.Ctx) error
	RecordTurn(ctx *fiber.Ctx) error
	EvaluateAnswer(ctx *fiber.Ctx) error
}

type interviewController struct {
	interviewService service.IInterviewService
}

func NewInterviewController(interviewService service.IInterviewService) IInterviewController {
	return &interviewController{
		interviewService: interviewService,
	}
}

func (c *interviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interview/v1")
	h.Post("session", c.StartSession)
	h.Post("session/advance", c.AdvanceSession)
	h.Post("turns", c.RecordTurn)
	h.Post("evaluate", c.EvaluateAnswer)
}

func (c *interviewController) StartSession(ctx *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.interviewService.StartSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success start interview session", res))
}

func (c *interviewController) AdvanceSession(ctx *fiber.Ctx) error {
	var req dto.AdvanceSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.interviewService.AdvanceSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success advance interview session", res))
}

func (c *interviewController) RecordTurn(ctx *fiber.Ctx) error {
	var req dto.RecordTurnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.interviewService.RecordTurn(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record interview turn", res))
}

func (c *interviewController) EvaluateAnswer(ctx *fiber.Ctx) error {
	var req dto.EvaluateAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.interviewService.EvaluateAnswer(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success evaluate answer", res))
}
