package dto

import (
	"time"

	"work-wizard/internal/repository"
)

type JobResponse struct {
	ID                  int64     `json:"job_id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Salary              string    `json:"salary"`
	Location            string    `json:"location"`
	Role                string    `json:"role"`
	JobType             *string   `json:"job_type"`
	WorkLocation        *string   `json:"work_location"`
	CompanyID           int64     `json:"company_id"`
	PostedByRecruiterID int64     `json:"posted_by_recruiter_id"`
	Openings            int       `json:"openings"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
}

func NewJobResponse(j repository.Job) JobResponse {
	return JobResponse{
		ID:                  j.ID,
		Title:               j.Title,
		Description:         j.Description,
		Salary:              j.Salary,
		Location:            j.Location,
		Role:                j.Role,
		JobType:             j.JobType,
		WorkLocation:        j.WorkLocation,
		CompanyID:           j.CompanyID,
		PostedByRecruiterID: j.PostedByRecruiterID,
		Openings:            j.Openings,
		IsActive:            j.IsActive,
		CreatedAt:           j.CreatedAt,
	}
}

type ActiveJobResponse struct {
	JobResponse
	CompanyName string  `json:"company_name"`
	CompanyLogo *string `json:"company_logo"`
}

func NewActiveJobResponse(row repository.ActiveJobRow) ActiveJobResponse {
	return ActiveJobResponse{
		JobResponse: NewJobResponse(row.Job),
		CompanyName: row.CompanyName,
		CompanyLogo: row.CompanyLogo,
	}
}

type CompanyResponse struct {
	ID          int64     `json:"company_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	Logo        *string   `json:"logo"`
	RecruiterID int64     `json:"recruiter_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCompanyResponse(c repository.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		Logo:        c.Logo,
		RecruiterID: c.RecruiterID,
		CreatedAt:   c.CreatedAt,
	}
}

type CompanyDetailResponse struct {
	CompanyResponse
	Jobs []JobResponse `json:"jobs"`
}
