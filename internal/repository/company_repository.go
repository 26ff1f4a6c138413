package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"work-wizard/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrCompanyNotFound = errors.New("company not found")

type Company struct {
	ID           int64
	Name         string
	Description  string
	Website      string
	Logo         *string
	LogoPublicID *string
	RecruiterID  int64
	CreatedAt    time.Time
}

type CompanyRepository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id int64) (Company, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ListByRecruiter(ctx context.Context, recruiterID int64) ([]Company, error)

	// Delete removes the company only when recruiterID owns it. Jobs and
	// applications go with it via the store's cascade rules.
	Delete(ctx context.Context, id int64, recruiterID int64) error
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

const companyColumns = `company_id, name, description, website, logo, logo_public_id, recruiter_id, created_at`

func (r *PostgresCompanyRepository) Create(ctx context.Context, c Company) (Company, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO companies (name, description, website, logo, logo_public_id, recruiter_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+companyColumns,
		c.Name, c.Description, c.Website, c.Logo, c.LogoPublicID, c.RecruiterID,
	)
	return scanCompany(row)
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id int64) (Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE company_id = $1`, id)
	return scanCompany(row)
}

func (r *PostgresCompanyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM companies WHERE name = $1)`, name)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresCompanyRepository) ListByRecruiter(ctx context.Context, recruiterID int64) ([]Company, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE recruiter_id = $1 ORDER BY created_at DESC`,
		recruiterID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Company, 0)
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Website, &c.Logo, &c.LogoPublicID, &c.RecruiterID, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresCompanyRepository) Delete(ctx context.Context, id int64, recruiterID int64) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM companies WHERE company_id = $1 AND recruiter_id = $2`,
		id, recruiterID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func scanCompany(row database.Row) (Company, error) {
	var c Company
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Website, &c.Logo, &c.LogoPublicID, &c.RecruiterID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Company{}, ErrCompanyNotFound
		}
		return Company{}, err
	}
	return c, nil
}

var _ CompanyRepository = (*PostgresCompanyRepository)(nil)
