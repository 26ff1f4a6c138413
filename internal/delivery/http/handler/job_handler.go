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

type JobHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Salary       string  `json:"salary"`
	Location     string  `json:"location"`
	Role         string  `json:"role"`
	JobType      *string `json:"job_type"`
	WorkLocation *string `json:"work_location"`
	CompanyID    int64   `json:"company_id"`
	Openings     int     `json:"openings"`
}

type updateJobRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Salary       string  `json:"salary"`
	Location     string  `json:"location"`
	Role         string  `json:"role"`
	JobType      *string `json:"job_type"`
	WorkLocation *string `json:"work_location"`
	Openings     int     `json:"openings"`
	IsActive     bool    `json:"is_active"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterPublicRoutes mounts the board endpoints that need no auth. The
// ":jobId" wildcard must come after "/all".
func (h *JobHandler) RegisterPublicRoutes(r fiber.Router) {
	r.Get("/all", h.ListActive)
	r.Get("/:jobId", h.Detail)
}

func (h *JobHandler) RegisterProtectedRoutes(r fiber.Router) {
	r.Post("/new", h.Create)
	r.Put("/update/:jobId", h.Update)
}

func (h *JobHandler) ListActive(c fiber.Ctx) error {
	rows, err := h.uc.ListActive(c.Context(), repository.ActiveJobFilter{
		Title:    c.Query("title"),
		Location: c.Query("location"),
	})
	if err != nil {
		return mapJobError(err)
	}

	res := make([]dto.ActiveJobResponse, 0, len(rows))
	for _, row := range rows {
		res = append(res, dto.NewActiveJobResponse(row))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *JobHandler) Detail(c fiber.Ctx) error {
	jobID, err := strconv.ParseInt(c.Params("jobId"), 10, 64)
	if err != nil || jobID <= 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	row, err := h.uc.Detail(c.Context(), jobID)
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewActiveJobResponse(row))
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), caller, usecase.CreateJobInput{
		Title:        req.Title,
		Description:  req.Description,
		Salary:       req.Salary,
		Location:     req.Location,
		Role:         req.Role,
		JobType:      req.JobType,
		WorkLocation: req.WorkLocation,
		CompanyID:    req.CompanyID,
		Openings:     req.Openings,
	})
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusCreated, "job created", dto.NewJobResponse(created))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := strconv.ParseInt(c.Params("jobId"), 10, 64)
	if err != nil || jobID <= 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	var req updateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), caller, jobID, repository.JobUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Salary:       req.Salary,
		Location:     req.Location,
		Role:         req.Role,
		JobType:      req.JobType,
		WorkLocation: req.WorkLocation,
		Openings:     req.Openings,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, "job updated", dto.NewJobResponse(updated))
}

func mapJobError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNotRecruiter):
		return middleware.NewAppError(fiber.StatusForbidden, "Only recruiters can do this", nil, err)
	case errors.Is(err, usecase.ErrInvalidJob):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job input", nil, err)
	case errors.Is(err, repository.ErrCompanyNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", nil, err)
	case errors.Is(err, repository.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrNotJobOwner):
		return middleware.NewAppError(fiber.StatusForbidden, "You do not own this job posting", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
