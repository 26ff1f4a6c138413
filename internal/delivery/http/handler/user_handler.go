package handler

import (
	"context"
	"errors"
	"io"
	"strconv"

	"work-wizard/internal/delivery/http/dto"
	"work-wizard/internal/delivery/http/middleware"
	"work-wizard/internal/domain/user"
	"work-wizard/internal/pkg/response"
	"work-wizard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

type updateProfileRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Bio         *string `json:"bio"`
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// RegisterRoutes wires the profile endpoints. Static paths must come before
// the ":userId" wildcard.
func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/me", h.Me)
	r.Put("/update/profile", h.UpdateProfile)
	r.Put("/update/pic", h.UpdatePic)
	r.Put("/update/resume", h.UpdateResume)
	r.Get("/:userId", h.Profile)
}

func (h *UserHandler) Me(c fiber.Ctx) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	usr, err := h.uc.Me(c.Context(), caller)
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) Profile(c fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("userId"), 10, 64)
	if err != nil || userID <= 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	usr, skills, err := h.uc.Profile(c.Context(), userID)
	if err != nil {
		return mapUserError(err)
	}

	if skills == nil {
		skills = []string{}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ProfileResponse{
		UserResponse: dto.NewUserResponse(usr),
		Skills:       skills,
	})
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.uc.UpdateProfile(c.Context(), caller, usecase.UpdateProfileInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Bio:         req.Bio,
	})
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, "profile updated", dto.NewUserResponse(usr))
}

func (h *UserHandler) UpdatePic(c fiber.Ctx) error {
	return h.updateFile(c, h.uc.UpdateProfilePic, "profile picture updated")
}

func (h *UserHandler) UpdateResume(c fiber.Ctx) error {
	return h.updateFile(c, h.uc.UpdateResume, "resume updated")
}

func (h *UserHandler) updateFile(
	c fiber.Ctx,
	apply func(ctx context.Context, caller usecase.Caller, content []byte) (user.User, error),
	message string,
) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	content, err := readFormFile(c, "file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing file", nil, err)
	}

	usr, err := apply(c.Context(), caller, content)
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, message, dto.NewUserResponse(usr))
}

func mapUserError(err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrEmptyFile):
		return middleware.NewAppError(fiber.StatusBadRequest, "Empty file", nil, err)
	case errors.Is(err, usecase.ErrUploadFailed):
		return middleware.NewAppError(fiber.StatusBadGateway, "Upload failed", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func readFormFile(c fiber.Ctx, field string) ([]byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
