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

type CompanyHandler struct {
	uc usecase.CompanyUsecase
}

func NewCompanyHandler(uc usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// RegisterRoutes mounts the company endpoints under the job group, matching
// the /api/job/company/* paths the frontend calls.
func (h *CompanyHandler) RegisterRoutes(r fiber.Router) {
	grp := r.Group("/company")
	grp.Post("/new", h.Create)
	grp.Get("/all", h.ListMine)
	grp.Get("/:companyId", h.Detail)
	grp.Delete("/:companyId", h.Delete)
}

func (h *CompanyHandler) Create(c fiber.Ctx) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	// Multipart form: text fields plus an optional logo file.
	logo, _ := readFormFile(c, "logo")

	created, err := h.uc.Create(c.Context(), caller, usecase.CreateCompanyInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Website:     c.FormValue("website"),
		Logo:        logo,
	})
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, fiber.StatusCreated, "company created", dto.NewCompanyResponse(created))
}

func (h *CompanyHandler) ListMine(c fiber.Ctx) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	companies, err := h.uc.ListMine(c.Context(), caller)
	if err != nil {
		return mapCompanyError(err)
	}

	res := make([]dto.CompanyResponse, 0, len(companies))
	for _, comp := range companies {
		res = append(res, dto.NewCompanyResponse(comp))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CompanyHandler) Detail(c fiber.Ctx) error {
	companyID, err := strconv.ParseInt(c.Params("companyId"), 10, 64)
	if err != nil || companyID <= 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid company id", nil, err)
	}

	detail, err := h.uc.Detail(c.Context(), companyID)
	if err != nil {
		return mapCompanyError(err)
	}

	jobs := make([]dto.JobResponse, 0, len(detail.Jobs))
	for _, j := range detail.Jobs {
		jobs = append(jobs, dto.NewJobResponse(j))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CompanyDetailResponse{
		CompanyResponse: dto.NewCompanyResponse(detail.Company),
		Jobs:            jobs,
	})
}

func (h *CompanyHandler) Delete(c fiber.Ctx) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	companyID, err := strconv.ParseInt(c.Params("companyId"), 10, 64)
	if err != nil || companyID <= 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid company id", nil, err)
	}

	if err := h.uc.Delete(c.Context(), caller, companyID); err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, fiber.StatusOK, "company deleted", nil)
}

func mapCompanyError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNotRecruiter):
		return middleware.NewAppError(fiber.StatusForbidden, "Only recruiters can do this", nil, err)
	case errors.Is(err, usecase.ErrInvalidCompany):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid company input", nil, err)
	case errors.Is(err, usecase.ErrCompanyNameTaken):
		return middleware.NewAppError(fiber.StatusConflict, "Company name already taken", nil, err)
	case errors.Is(err, repository.ErrCompanyNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", nil, err)
	case errors.Is(err, usecase.ErrUploadFailed):
		return middleware.NewAppError(fiber.StatusBadGateway, "Upload failed", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
