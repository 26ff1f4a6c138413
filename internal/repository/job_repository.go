package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"work-wizard/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type Job struct {
	ID                  int64
	Title               string
	Description         string
	Salary              string
	Location            string
	Role                string
	JobType             *string
	WorkLocation        *string
	CompanyID           int64
	PostedByRecruiterID int64
	Openings            int
	IsActive            bool
	CreatedAt           time.Time
}

// ActiveJobRow is a listing row joined with company display fields.
type ActiveJobRow struct {
	Job
	CompanyName string
	CompanyLogo *string
}

type ActiveJobFilter struct {
	Title    string
	Location string
}

type JobUpdate struct {
	Title        string
	Description  string
	Salary       string
	Location     string
	Role         string
	JobType      *string
	WorkLocation *string
	Openings     int
	IsActive     bool
}

type JobRepository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id int64) (Job, error)
	GetDetail(ctx context.Context, id int64) (ActiveJobRow, error)
	Update(ctx context.Context, id int64, in JobUpdate) (Job, error)
	ListByCompany(ctx context.Context, companyID int64) ([]Job, error)
	ListActive(ctx context.Context, filter ActiveJobFilter) ([]ActiveJobRow, error)

	// CompanyOwnedBy reports whether the company exists and belongs to the
	// recruiter; the join check behind job creation.
	CompanyOwnedBy(ctx context.Context, companyID, recruiterID int64) (bool, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `job_id, title, description, salary, location, role, job_type, work_location,
	company_id, posted_by_recruiter_id, openings, is_active, created_at`

func (r *PostgresJobRepository) Create(ctx context.Context, j Job) (Job, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (title, description, salary, location, role, job_type, work_location,
			company_id, posted_by_recruiter_id, openings)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+jobColumns,
		j.Title, j.Description, j.Salary, j.Location, j.Role, j.JobType, j.WorkLocation,
		j.CompanyID, j.PostedByRecruiterID, j.Openings,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id int64) (Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE job_id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) GetDetail(ctx context.Context, id int64) (ActiveJobRow, error) {
	row := r.db.QueryRow(ctx,
		`SELECT j.job_id, j.title, j.description, j.salary, j.location, j.role, j.job_type,
			j.work_location, j.company_id, j.posted_by_recruiter_id, j.openings, j.is_active,
			j.created_at, c.name, c.logo
		 FROM jobs j
		 JOIN companies c ON c.company_id = j.company_id
		 WHERE j.job_id = $1`,
		id,
	)
	return scanActiveJobRow(row)
}

func (r *PostgresJobRepository) Update(ctx context.Context, id int64, in JobUpdate) (Job, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE jobs SET title = $1, description = $2, salary = $3, location = $4, role = $5,
			job_type = $6, work_location = $7, openings = $8, is_active = $9
		 WHERE job_id = $10
		 RETURNING `+jobColumns,
		in.Title, in.Description, in.Salary, in.Location, in.Role,
		in.JobType, in.WorkLocation, in.Openings, in.IsActive, id,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) ListByCompany(ctx context.Context, companyID int64) ([]Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE company_id = $1 ORDER BY created_at DESC`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Job, 0)
	for rows.Next() {
		j, err := scanJobFromRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *PostgresJobRepository) ListActive(ctx context.Context, filter ActiveJobFilter) ([]ActiveJobRow, error) {
	query, args := buildActiveJobsQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ActiveJobRow, 0)
	for rows.Next() {
		var j ActiveJobRow
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Description, &j.Salary, &j.Location, &j.Role, &j.JobType,
			&j.WorkLocation, &j.CompanyID, &j.PostedByRecruiterID, &j.Openings, &j.IsActive,
			&j.CreatedAt, &j.CompanyName, &j.CompanyLogo,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// buildActiveJobsQuery composes the public listing query. Title and location
// filters are case-insensitive substring matches and combine with AND.
func buildActiveJobsQuery(filter ActiveJobFilter) (string, []any) {
	query := `SELECT j.job_id, j.title, j.description, j.salary, j.location, j.role, j.job_type,
		j.work_location, j.company_id, j.posted_by_recruiter_id, j.openings, j.is_active,
		j.created_at, c.name, c.logo
	 FROM jobs j
	 JOIN companies c ON c.company_id = j.company_id
	 WHERE j.is_active = TRUE`

	args := []any{}
	argIdx := 1

	if filter.Title != "" {
		query += fmt.Sprintf(" AND j.title ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Title+"%")
		argIdx++
	}
	if filter.Location != "" {
		query += fmt.Sprintf(" AND j.location ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Location+"%")
		argIdx++
	}

	query += " ORDER BY j.created_at DESC"
	return query, args
}

func (r *PostgresJobRepository) CompanyOwnedBy(ctx context.Context, companyID, recruiterID int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM companies WHERE company_id = $1 AND recruiter_id = $2)`,
		companyID, recruiterID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanJob(row database.Row) (Job, error) {
	var j Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Salary, &j.Location, &j.Role, &j.JobType,
		&j.WorkLocation, &j.CompanyID, &j.PostedByRecruiterID, &j.Openings, &j.IsActive, &j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Job{}, ErrJobNotFound
		}
		return Job{}, err
	}
	return j, nil
}

func scanJobFromRows(rows database.Rows) (Job, error) {
	var j Job
	err := rows.Scan(
		&j.ID, &j.Title, &j.Description, &j.Salary, &j.Location, &j.Role, &j.JobType,
		&j.WorkLocation, &j.CompanyID, &j.PostedByRecruiterID, &j.Openings, &j.IsActive, &j.CreatedAt,
	)
	return j, err
}

func scanActiveJobRow(row database.Row) (ActiveJobRow, error) {
	var j ActiveJobRow
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Salary, &j.Location, &j.Role, &j.JobType,
		&j.WorkLocation, &j.CompanyID, &j.PostedByRecruiterID, &j.Openings, &j.IsActive,
		&j.CreatedAt, &j.CompanyName, &j.CompanyLogo,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return ActiveJobRow{}, ErrJobNotFound
		}
		return ActiveJobRow{}, err
	}
	return j, nil
}

var _ JobRepository = (*PostgresJobRepository)(nil)
