package handler

import (
	"errors"

	"work-wizard/internal/delivery/http/middleware"
	"work-wizard/internal/pkg/response"
	"work-wizard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserSkillHandler struct {
	uc usecase.UserSkillUsecase
}

type skillRequest struct {
	SkillName string `json:"skill_name"`
}

func NewUserSkillHandler(uc usecase.UserSkillUsecase) *UserSkillHandler {
	return &UserSkillHandler{uc: uc}
}

func (h *UserSkillHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/skills/add", h.Add)
	r.Put("/skill/delete", h.Remove)
}

func (h *UserSkillHandler) Add(c fiber.Ctx) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	added, err := h.uc.AddSkill(c.Context(), caller, req.SkillName)
	if err != nil {
		return mapUserSkillError(err)
	}

	if !added {
		return response.Success(c, fiber.StatusOK, "skill already added", nil)
	}
	return response.Success(c, fiber.StatusCreated, "skill added", nil)
}

func (h *UserSkillHandler) Remove(c fiber.Ctx) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.RemoveSkill(c.Context(), caller, req.SkillName); err != nil {
		return mapUserSkillError(err)
	}
	return response.Success(c, fiber.StatusOK, "skill removed", nil)
}

func mapUserSkillError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidSkillName):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill name", nil, err)
	case errors.Is(err, usecase.ErrSkillNotLinked):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not linked to user", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
