package usecase

import (
	"context"
	"errors"
	"time"

	"work-wizard/internal/domain/user"
	"work-wizard/internal/notify"
	"work-wizard/internal/repository"
)

var (
	ErrNotJobseeker       = errors.New("only jobseekers can apply for jobs")
	ErrResumeRequired     = errors.New("resume must be uploaded before applying")
	ErrJobNotActive       = errors.New("job is no longer accepting applications")
	ErrAlreadyApplied     = errors.New("already applied for this job")
	ErrInvalidStatus      = errors.New("invalid application status")
	ErrNotJobOwner        = errors.New("caller does not own this job posting")
	ErrApplicationMissing = errors.New("application not found")
)

type ApplicationUsecase interface {
	// Apply runs the eligibility chain and inserts the application with the
	// applicant's email, resume and subscription flag snapshotted as of now.
	Apply(ctx context.Context, caller Caller, jobID int64) (repository.Application, error)

	// UpdateStatus moves an application to a new lifecycle status. Only the
	// recruiter who posted the parent job may do so.
	UpdateStatus(ctx context.Context, caller Caller, applicationID int64, status string) (repository.Application, error)

	ListMine(ctx context.Context, caller Caller) ([]repository.MyApplicationRow, error)
	ListForJob(ctx context.Context, caller Caller, jobID int64) ([]repository.Application, error)
}

type Applications struct {
	apps   repository.ApplicationRepository
	jobs   repository.JobRepository
	users  user.Repository
	events notify.Sink

	now func() time.Time
}

func NewApplicationUsecase(
	apps repository.ApplicationRepository,
	jobs repository.JobRepository,
	users user.Repository,
	events notify.Sink,
) *Applications {
	return &Applications{apps: apps, jobs: jobs, users: users, events: events, now: time.Now}
}

func (a *Applications) Apply(ctx context.Context, caller Caller, jobID int64) (repository.Application, error) {
	if caller.Role != user.RoleJobseeker {
		return repository.Application{}, ErrNotJobseeker
	}

	usr, err := a.users.GetByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return repository.Application{}, ErrUnauthorized
		}
		return repository.Application{}, ErrInternal
	}
	if usr.Resume == nil || *usr.Resume == "" {
		return repository.Application{}, ErrResumeRequired
	}

	job, err := a.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return repository.Application{}, repository.ErrJobNotFound
		}
		return repository.Application{}, ErrInternal
	}
	if !job.IsActive {
		return repository.Application{}, ErrJobNotActive
	}

	// The checks above are advisory; the UNIQUE (job_id, applicant_id)
	// constraint decides duplicates under concurrency.
	created, err := a.apps.Create(ctx, repository.Application{
		JobID:          job.ID,
		ApplicantID:    usr.ID,
		ApplicantEmail: usr.Email,
		Resume:         *usr.Resume,
		Status:         repository.StatusSubmitted,
		Subscribed:     usr.Subscribed(a.now()),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return repository.Application{}, ErrAlreadyApplied
		}
		if isForeignKeyViolation(err) {
			return repository.Application{}, repository.ErrJobNotFound
		}
		return repository.Application{}, ErrInternal
	}

	a.publish(notify.ApplicationEvent{
		Type:           notify.EventApplicationCreated,
		ApplicationID:  created.ID,
		JobID:          job.ID,
		JobTitle:       job.Title,
		ApplicantName:  usr.Name,
		ApplicantEmail: created.ApplicantEmail,
		Status:         created.Status,
		OccurredAt:     a.now(),
	})

	return created, nil
}

func (a *Applications) UpdateStatus(ctx context.Context, caller Caller, applicationID int64, status string) (repository.Application, error) {
	if !repository.ValidApplicationStatus(status) {
		return repository.Application{}, ErrInvalidStatus
	}

	app, posterID, err := a.apps.GetWithPoster(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return repository.Application{}, ErrApplicationMissing
		}
		return repository.Application{}, ErrInternal
	}
	if posterID != caller.ID {
		return repository.Application{}, ErrNotJobOwner
	}

	updated, err := a.apps.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return repository.Application{}, ErrApplicationMissing
		}
		return repository.Application{}, ErrInternal
	}

	ev := notify.ApplicationEvent{
		Type:           notify.EventApplicationStatusChanged,
		ApplicationID:  updated.ID,
		JobID:          updated.JobID,
		ApplicantEmail: updated.ApplicantEmail,
		Status:         updated.Status,
		OccurredAt:     a.now(),
	}
	if job, jobErr := a.jobs.GetByID(ctx, app.JobID); jobErr == nil {
		ev.JobTitle = job.Title
	}
	if applicant, usrErr := a.users.GetByID(ctx, app.ApplicantID); usrErr == nil {
		ev.ApplicantName = applicant.Name
	}
	a.publish(ev)

	return updated, nil
}

func (a *Applications) ListMine(ctx context.Context, caller Caller) ([]repository.MyApplicationRow, error) {
	rows, err := a.apps.ListByApplicant(ctx, caller.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}

func (a *Applications) ListForJob(ctx context.Context, caller Caller, jobID int64) ([]repository.Application, error) {
	job, err := a.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, repository.ErrJobNotFound
		}
		return nil, ErrInternal
	}
	if job.PostedByRecruiterID != caller.ID {
		return nil, ErrNotJobOwner
	}

	apps, err := a.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

func (a *Applications) publish(ev notify.ApplicationEvent) {
	if a.events != nil {
		a.events.Publish(ev)
	}
}

var _ ApplicationUsecase = (*Applications)(nil)
