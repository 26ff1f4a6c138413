package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"work-wizard/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrApplicationNotFound = errors.New("application not found")

const (
	StatusSubmitted = "Submitted"
	StatusReviewed  = "Reviewed"
	StatusRejected  = "Rejected"
	StatusHired     = "Hired"
)

func ValidApplicationStatus(status string) bool {
	switch status {
	case StatusSubmitted, StatusReviewed, StatusRejected, StatusHired:
		return true
	}
	return false
}

// Application snapshots applicant_email, resume and subscribed at apply time;
// later profile edits do not touch past applications.
type Application struct {
	ID             int64
	JobID          int64
	ApplicantID    int64
	ApplicantEmail string
	Resume         string
	Status         string
	Subscribed     bool
	AppliedAt      time.Time
}

// MyApplicationRow joins the job display fields for the applicant's dashboard.
type MyApplicationRow struct {
	Application
	JobTitle    string
	JobSalary   string
	JobLocation string
}

type ApplicationRepository interface {
	// Create inserts the application. The UNIQUE (job_id, applicant_id)
	// constraint is the authority on duplicates; the resulting violation is
	// returned raw for the caller to classify.
	Create(ctx context.Context, a Application) (Application, error)

	GetByID(ctx context.Context, id int64) (Application, error)

	// GetWithPoster also resolves the posting recruiter of the parent job,
	// for the ownership check on status updates.
	GetWithPoster(ctx context.Context, id int64) (Application, int64, error)

	UpdateStatus(ctx context.Context, id int64, status string) (Application, error)
	ListByApplicant(ctx context.Context, applicantID int64) ([]MyApplicationRow, error)
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `application_id, job_id, applicant_id, applicant_email, resume, status, subscribed, applied_at`

func (r *PostgresApplicationRepository) Create(ctx context.Context, a Application) (Application, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (job_id, applicant_id, applicant_email, resume, subscribed)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+applicationColumns,
		a.JobID, a.ApplicantID, a.ApplicantEmail, a.Resume, a.Subscribed,
	)

	var created Application
	if err := scanApplication(row, &created); err != nil {
		return Application{}, err
	}
	return created, nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id int64) (Application, error) {
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE application_id = $1`, id)

	var a Application
	if err := scanApplication(row, &a); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Application{}, ErrApplicationNotFound
		}
		return Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) GetWithPoster(ctx context.Context, id int64) (Application, int64, error) {
	row := r.db.QueryRow(ctx,
		`SELECT a.application_id, a.job_id, a.applicant_id, a.applicant_email, a.resume,
			a.status, a.subscribed, a.applied_at, j.posted_by_recruiter_id
		 FROM applications a
		 JOIN jobs j ON j.job_id = a.job_id
		 WHERE a.application_id = $1`,
		id,
	)

	var a Application
	var posterID int64
	err := row.Scan(
		&a.ID, &a.JobID, &a.ApplicantID, &a.ApplicantEmail, &a.Resume,
		&a.Status, &a.Subscribed, &a.AppliedAt, &posterID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Application{}, 0, ErrApplicationNotFound
		}
		return Application{}, 0, err
	}
	return a, posterID, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id int64, status string) (Application, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE applications SET status = $1 WHERE application_id = $2 RETURNING `+applicationColumns,
		status, id,
	)

	var a Application
	if err := scanApplication(row, &a); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Application{}, ErrApplicationNotFound
		}
		return Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) ListByApplicant(ctx context.Context, applicantID int64) ([]MyApplicationRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.application_id, a.job_id, a.applicant_id, a.applicant_email, a.resume,
			a.status, a.subscribed, a.applied_at,
			j.title, j.salary, j.location
		 FROM applications a
		 JOIN jobs j ON j.job_id = a.job_id
		 WHERE a.applicant_id = $1
		 ORDER BY a.applied_at DESC`,
		applicantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MyApplicationRow, 0)
	for rows.Next() {
		var m MyApplicationRow
		if err := rows.Scan(
			&m.ID, &m.JobID, &m.ApplicantID, &m.ApplicantEmail, &m.Resume,
			&m.Status, &m.Subscribed, &m.AppliedAt,
			&m.JobTitle, &m.JobSalary, &m.JobLocation,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID int64) ([]Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 ORDER BY applied_at DESC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Application, 0)
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.ApplicantEmail, &a.Resume, &a.Status, &a.Subscribed, &a.AppliedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanApplication(row database.Row, a *Application) error {
	return row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.ApplicantEmail, &a.Resume, &a.Status, &a.Subscribed, &a.AppliedAt)
}

var _ ApplicationRepository = (*PostgresApplicationRepository)(nil)
