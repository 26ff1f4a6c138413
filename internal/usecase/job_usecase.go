package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"work-wizard/internal/domain/user"
	"work-wizard/internal/infrastructure/cache"
	"work-wizard/internal/repository"
)

var ErrInvalidJob = errors.New("invalid job input")

type CreateJobInput struct {
	Title        string
	Description  string
	Salary       string
	Location     string
	Role         string
	JobType      *string
	WorkLocation *string
	CompanyID    int64
	Openings     int
}

type JobUsecase interface {
	Create(ctx context.Context, caller Caller, in CreateJobInput) (repository.Job, error)
	Update(ctx context.Context, caller Caller, jobID int64, in repository.JobUpdate) (repository.Job, error)
	Detail(ctx context.Context, jobID int64) (repository.ActiveJobRow, error)

	// ListActive serves the public board, cached per (title, location)
	// filter pair. A cold or unreachable cache falls through to the store.
	ListActive(ctx context.Context, filter repository.ActiveJobFilter) ([]repository.ActiveJobRow, error)
}

type Jobs struct {
	jobs     repository.JobRepository
	cache    *cache.Redis
	cacheTTL time.Duration
}

func NewJobUsecase(jobs repository.JobRepository, c *cache.Redis, cacheTTL time.Duration) *Jobs {
	return &Jobs{jobs: jobs, cache: c, cacheTTL: cacheTTL}
}

func (j *Jobs) Create(ctx context.Context, caller Caller, in CreateJobInput) (repository.Job, error) {
	if caller.Role != user.RoleRecruiter {
		return repository.Job{}, ErrNotRecruiter
	}
	if strings.TrimSpace(in.Title) == "" || in.CompanyID <= 0 {
		return repository.Job{}, ErrInvalidJob
	}

	owned, err := j.jobs.CompanyOwnedBy(ctx, in.CompanyID, caller.ID)
	if err != nil {
		return repository.Job{}, ErrInternal
	}
	if !owned {
		return repository.Job{}, repository.ErrCompanyNotFound
	}

	openings := in.Openings
	if openings <= 0 {
		openings = 1
	}

	created, err := j.jobs.Create(ctx, repository.Job{
		Title:               strings.TrimSpace(in.Title),
		Description:         in.Description,
		Salary:              in.Salary,
		Location:            in.Location,
		Role:                in.Role,
		JobType:             in.JobType,
		WorkLocation:        in.WorkLocation,
		CompanyID:           in.CompanyID,
		PostedByRecruiterID: caller.ID,
		Openings:            openings,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.Job{}, repository.ErrCompanyNotFound
		}
		return repository.Job{}, ErrInternal
	}

	j.invalidateListing(ctx)
	return created, nil
}

func (j *Jobs) Update(ctx context.Context, caller Caller, jobID int64, in repository.JobUpdate) (repository.Job, error) {
	current, err := j.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return repository.Job{}, repository.ErrJobNotFound
		}
		return repository.Job{}, ErrInternal
	}
	if current.PostedByRecruiterID != caller.ID {
		return repository.Job{}, ErrNotJobOwner
	}

	updated, err := j.jobs.Update(ctx, jobID, in)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return repository.Job{}, repository.ErrJobNotFound
		}
		return repository.Job{}, ErrInternal
	}

	j.invalidateListing(ctx)
	return updated, nil
}

func (j *Jobs) Detail(ctx context.Context, jobID int64) (repository.ActiveJobRow, error) {
	row, err := j.jobs.GetDetail(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return repository.ActiveJobRow{}, repository.ErrJobNotFound
		}
		return repository.ActiveJobRow{}, ErrInternal
	}
	return row, nil
}

func (j *Jobs) ListActive(ctx context.Context, filter repository.ActiveJobFilter) ([]repository.ActiveJobRow, error) {
	key := cache.ActiveJobsKey(filter.Title, filter.Location)

	if j.cache != nil {
		var cached []repository.ActiveJobRow
		if hit, err := j.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	rows, err := j.jobs.ListActive(ctx, filter)
	if err != nil {
		return nil, ErrInternal
	}

	if j.cache != nil {
		_ = j.cache.SetJSON(ctx, key, rows, j.cacheTTL)
	}
	return rows, nil
}

func (j *Jobs) invalidateListing(ctx context.Context) {
	if j.cache != nil {
		_ = j.cache.InvalidateActiveJobs(ctx)
	}
}

var _ JobUsecase = (*Jobs)(nil)
