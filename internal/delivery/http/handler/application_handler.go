package handler

import (
	"errors"
	"strconv"

	"work-wizard/internal/delivery/http/dto"
	"work-wizard/internal/delivery/http/middleware"
	"work-wizard/internal/pkg/response"
	"work-wizard/internal/repository"
	"work-wizard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	JobID int64 `json:"job_id"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// RegisterUserRoutes mounts the applicant-side endpoints under /api/user.
func (h *ApplicationHandler) RegisterUserRoutes(r fiber.Router) {
	r.Post("/apply/job", h.Apply)
	r.Get("/application/all", h.ListMine)
}

// RegisterJobRoutes mounts the recruiter-side endpoints under /api/job.
func (h *ApplicationHandler) RegisterJobRoutes(r fiber.Router) {
	r.Get("/application/:jobId", h.ListForJob)
	r.Put("/application/update/:applicationId", h.UpdateStatus)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.JobID <= 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, nil)
	}

	created, err := h.uc.Apply(c.Context(), caller, req.JobID)
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusCreated, "application submitted", dto.NewApplicationResponse(created))
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	rows, err := h.uc.ListMine(c.Context(), caller)
	if err != nil {
		return mapApplicationError(err)
	}

	res := make([]dto.MyApplicationResponse, 0, len(rows))
	for _, row := range rows {
		res = append(res, dto.NewMyApplicationResponse(row))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ApplicationHandler) ListForJob(c fiber.Ctx) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := strconv.ParseInt(c.Params("jobId"), 10, 64)
	if err != nil || jobID <= 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	apps, err := h.uc.ListForJob(c.Context(), caller, jobID)
	if err != nil {
		return mapApplicationError(err)
	}

	res := make([]dto.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		res = append(res, dto.NewApplicationResponse(a))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	applicationID, err := strconv.ParseInt(c.Params("applicationId"), 10, 64)
	if err != nil || applicationID <= 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateStatus(c.Context(), caller, applicationID, req.Status)
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK, "application status updated", dto.NewApplicationResponse(updated))
}

func mapApplicationError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNotJobseeker):
		return middleware.NewAppError(fiber.StatusForbidden, "Only jobseekers can apply for jobs", nil, err)
	case errors.Is(err, usecase.ErrResumeRequired):
		return middleware.NewAppError(fiber.StatusBadRequest, "Please upload your resume before applying", nil, err)
	case errors.Is(err, repository.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotActive):
		return middleware.NewAppError(fiber.StatusBadRequest, "Job is no longer accepting applications", nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied for this job", nil, err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application status", nil, err)
	case errors.Is(err, usecase.ErrApplicationMissing):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrNotJobOwner):
		return middleware.NewAppError(fiber.StatusForbidden, "You do not own this job posting", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
