package dto

import (
	"time"

	"work-wizard/internal/repository"
)

type ApplicationResponse struct {
	ID             int64     `json:"application_id"`
	JobID          int64     `json:"job_id"`
	ApplicantID    int64     `json:"applicant_id"`
	ApplicantEmail string    `json:"applicant_email"`
	Resume         string    `json:"resume"`
	Status         string    `json:"status"`
	Subscribed     bool      `json:"subscribed"`
	AppliedAt      time.Time `json:"applied_at"`
}

func NewApplicationResponse(a repository.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:             a.ID,
		JobID:          a.JobID,
		ApplicantID:    a.ApplicantID,
		ApplicantEmail: a.ApplicantEmail,
		Resume:         a.Resume,
		Status:         a.Status,
		Subscribed:     a.Subscribed,
		AppliedAt:      a.AppliedAt,
	}
}

// MyApplicationResponse is the applicant dashboard row with job display
// fields joined in.
type MyApplicationResponse struct {
	ApplicationResponse
	JobTitle    string `json:"job_title"`
	JobSalary   string `json:"job_salary"`
	JobLocation string `json:"job_location"`
}

func NewMyApplicationResponse(row repository.MyApplicationRow) MyApplicationResponse {
	return MyApplicationResponse{
		ApplicationResponse: NewApplicationResponse(row.Application),
		JobTitle:            row.JobTitle,
		JobSalary:           row.JobSalary,
		JobLocation:         row.JobLocation,
	}
}
