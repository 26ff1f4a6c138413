package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"work-wizard/internal/domain/user"
	"work-wizard/internal/infrastructure/cache"
	"work-wizard/internal/infrastructure/upload"
	"work-wizard/internal/repository"
)

var (
	ErrNotRecruiter     = errors.New("only recruiters can do this")
	ErrCompanyNameTaken = errors.New("company name already taken")
	ErrInvalidCompany   = errors.New("invalid company input")
)

type CreateCompanyInput struct {
	Name        string
	Description string
	Website     string
	Logo        []byte
}

type CompanyDetail struct {
	Company repository.Company
	Jobs    []repository.Job
}

type CompanyUsecase interface {
	Create(ctx context.Context, caller Caller, in CreateCompanyInput) (repository.Company, error)
	Delete(ctx context.Context, caller Caller, companyID int64) error
	ListMine(ctx context.Context, caller Caller) ([]repository.Company, error)
	Detail(ctx context.Context, companyID int64) (CompanyDetail, error)
}

type Companies struct {
	companies repository.CompanyRepository
	jobs      repository.JobRepository
	uploader  upload.Client
	cache     *cache.Redis
}

func NewCompanyUsecase(
	companies repository.CompanyRepository,
	jobs repository.JobRepository,
	uploader upload.Client,
	c *cache.Redis,
) *Companies {
	return &Companies{companies: companies, jobs: jobs, uploader: uploader, cache: c}
}

func (c *Companies) Create(ctx context.Context, caller Caller, in CreateCompanyInput) (repository.Company, error) {
	if caller.Role != user.RoleRecruiter {
		return repository.Company{}, ErrNotRecruiter
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return repository.Company{}, ErrInvalidCompany
	}

	taken, err := c.companies.ExistsByName(ctx, name)
	if err != nil {
		return repository.Company{}, ErrInternal
	}
	if taken {
		return repository.Company{}, ErrCompanyNameTaken
	}

	comp := repository.Company{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Website:     strings.TrimSpace(in.Website),
		RecruiterID: caller.ID,
	}

	if len(in.Logo) > 0 {
		res, upErr := c.uploader.Upload(ctx, in.Logo, fmt.Sprintf("companies/%s/logo", slugify(name)))
		if upErr != nil {
			return repository.Company{}, ErrUploadFailed
		}
		comp.Logo = &res.URL
		comp.LogoPublicID = &res.PublicID
	}

	created, err := c.companies.Create(ctx, comp)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.Company{}, ErrCompanyNameTaken
		}
		return repository.Company{}, ErrInternal
	}
	return created, nil
}

func (c *Companies) Delete(ctx context.Context, caller Caller, companyID int64) error {
	if err := c.companies.Delete(ctx, companyID, caller.ID); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return repository.ErrCompanyNotFound
		}
		return ErrInternal
	}

	// Cascade removed the company's jobs; the public listing is stale.
	if c.cache != nil {
		_ = c.cache.InvalidateActiveJobs(ctx)
	}
	return nil
}

func (c *Companies) ListMine(ctx context.Context, caller Caller) ([]repository.Company, error) {
	out, err := c.companies.ListByRecruiter(ctx, caller.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (c *Companies) Detail(ctx context.Context, companyID int64) (CompanyDetail, error) {
	comp, err := c.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return CompanyDetail{}, repository.ErrCompanyNotFound
		}
		return CompanyDetail{}, ErrInternal
	}

	jobs, err := c.jobs.ListByCompany(ctx, companyID)
	if err != nil {
		return CompanyDetail{}, ErrInternal
	}

	return CompanyDetail{Company: comp, Jobs: jobs}, nil
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, s)
}

var _ CompanyUsecase = (*Companies)(nil)
