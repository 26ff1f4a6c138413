package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"work-wizard/internal/domain/user"
	"work-wizard/internal/notify"
	"work-wizard/internal/repository"
)

type mockApplicationRepo struct {
	created    *repository.Application
	createErr  error
	withPoster repository.Application
	posterID   int64
	getErr     error
	updated    repository.Application
	updateErr  error
	byJob      []repository.Application
	byMine     []repository.MyApplicationRow
}

func (m *mockApplicationRepo) Create(_ context.Context, a repository.Application) (repository.Application, error) {
	if m.createErr != nil {
		return repository.Application{}, m.createErr
	}
	a.ID = 101
	a.AppliedAt = time.Now()
	m.created = &a
	return a, nil
}

func (m *mockApplicationRepo) GetByID(context.Context, int64) (repository.Application, error) {
	return m.withPoster, m.getErr
}

func (m *mockApplicationRepo) GetWithPoster(context.Context, int64) (repository.Application, int64, error) {
	if m.getErr != nil {
		return repository.Application{}, 0, m.getErr
	}
	return m.withPoster, m.posterID, nil
}

func (m *mockApplicationRepo) UpdateStatus(_ context.Context, id int64, status string) (repository.Application, error) {
	if m.updateErr != nil {
		return repository.Application{}, m.updateErr
	}
	out := m.updated
	out.ID = id
	out.Status = status
	return out, nil
}

func (m *mockApplicationRepo) ListByApplicant(context.Context, int64) ([]repository.MyApplicationRow, error) {
	return m.byMine, nil
}

func (m *mockApplicationRepo) ListByJob(context.Context, int64) ([]repository.Application, error) {
	return m.byJob, nil
}

type mockJobRepo struct {
	job    repository.Job
	getErr error
}

func (m mockJobRepo) Create(_ context.Context, j repository.Job) (repository.Job, error) {
	return j, nil
}
func (m mockJobRepo) GetByID(context.Context, int64) (repository.Job, error) {
	return m.job, m.getErr
}
func (m mockJobRepo) GetDetail(context.Context, int64) (repository.ActiveJobRow, error) {
	return repository.ActiveJobRow{Job: m.job}, m.getErr
}
func (m mockJobRepo) Update(context.Context, int64, repository.JobUpdate) (repository.Job, error) {
	return m.job, nil
}
func (m mockJobRepo) ListByCompany(context.Context, int64) ([]repository.Job, error) {
	return nil, nil
}
func (m mockJobRepo) ListActive(context.Context, repository.ActiveJobFilter) ([]repository.ActiveJobRow, error) {
	return nil, nil
}
func (m mockJobRepo) CompanyOwnedBy(context.Context, int64, int64) (bool, error) {
	return true, nil
}

type mockUserRepo struct {
	user   user.User
	getErr error
}

func (m mockUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }
func (m mockUserRepo) GetByID(context.Context, int64) (user.User, error) {
	return m.user, m.getErr
}
func (m mockUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return m.user, m.getErr
}
func (m mockUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (m mockUserRepo) ListSkillNames(context.Context, int64) ([]string, error) {
	return nil, nil
}
func (m mockUserRepo) UpdateProfile(context.Context, int64, user.ProfileUpdate) (user.User, error) {
	return m.user, nil
}
func (m mockUserRepo) UpdateProfilePic(context.Context, int64, string, string) (user.User, error) {
	return m.user, nil
}
func (m mockUserRepo) UpdateResume(context.Context, int64, string, string) (user.User, error) {
	return m.user, nil
}
func (m mockUserRepo) SetSubscription(context.Context, int64, time.Time) error { return nil }

type captureSink struct {
	events []notify.ApplicationEvent
}

func (c *captureSink) Publish(ev notify.ApplicationEvent) {
	c.events = append(c.events, ev)
}

func strPtr(s string) *string { return &s }

func jobseekerWithResume(now time.Time, subscribed bool) user.User {
	u := user.User{
		ID:     7,
		Name:   "Asha",
		Email:  "asha@example.com",
		Role:   user.RoleJobseeker,
		Resume: strPtr("https://files.example.com/resume-7.pdf"),
	}
	if subscribed {
		exp := now.Add(24 * time.Hour)
		u.Subscription = &exp
	}
	return u
}

func TestApply_SnapshotsProfileFields(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	apps := &mockApplicationRepo{}
	sink := &captureSink{}
	uc := NewApplicationUsecase(apps,
		mockJobRepo{job: repository.Job{ID: 33, Title: "Backend Engineer", IsActive: true, PostedByRecruiterID: 9}},
		mockUserRepo{user: jobseekerWithResume(now, true)},
		sink,
	)
	uc.now = func() time.Time { return now }

	created, err := uc.Apply(context.Background(), Caller{ID: 7, Role: user.RoleJobseeker}, 33)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.ApplicantEmail != "asha@example.com" {
		t.Fatalf("email not snapshotted: %q", created.ApplicantEmail)
	}
	if created.Resume != "https://files.example.com/resume-7.pdf" {
		t.Fatalf("resume not snapshotted: %q", created.Resume)
	}
	if !created.Subscribed {
		t.Fatalf("expected subscribed snapshot true")
	}
	if created.Status != repository.StatusSubmitted {
		t.Fatalf("expected Submitted, got %q", created.Status)
	}
	if len(sink.events) != 1 || sink.events[0].Type != notify.EventApplicationCreated {
		t.Fatalf("expected one created event, got %+v", sink.events)
	}
}

func TestApply_ExpiredSubscriptionSnapshotsFalse(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	usr := jobseekerWithResume(now, false)
	past := now.Add(-time.Hour)
	usr.Subscription = &past

	apps := &mockApplicationRepo{}
	uc := NewApplicationUsecase(apps,
		mockJobRepo{job: repository.Job{ID: 33, IsActive: true}},
		mockUserRepo{user: usr},
		nil,
	)
	uc.now = func() time.Time { return now }

	created, err := uc.Apply(context.Background(), Caller{ID: 7, Role: user.RoleJobseeker}, 33)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Subscribed {
		t.Fatalf("expected subscribed snapshot false for expired subscription")
	}
}

func TestApply_RejectsRecruiter(t *testing.T) {
	uc := NewApplicationUsecase(&mockApplicationRepo{}, mockJobRepo{}, mockUserRepo{}, nil)
	_, err := uc.Apply(context.Background(), Caller{ID: 9, Role: user.RoleRecruiter}, 33)
	if !errors.Is(err, ErrNotJobseeker) {
		t.Fatalf("expected ErrNotJobseeker, got %v", err)
	}
}

func TestApply_RequiresResume(t *testing.T) {
	uc := NewApplicationUsecase(&mockApplicationRepo{}, mockJobRepo{},
		mockUserRepo{user: user.User{ID: 7, Role: user.RoleJobseeker}}, nil)
	_, err := uc.Apply(context.Background(), Caller{ID: 7, Role: user.RoleJobseeker}, 33)
	if !errors.Is(err, ErrResumeRequired) {
		t.Fatalf("expected ErrResumeRequired, got %v", err)
	}
}

func TestApply_JobNotFound(t *testing.T) {
	now := time.Now()
	uc := NewApplicationUsecase(&mockApplicationRepo{},
		mockJobRepo{getErr: repository.ErrJobNotFound},
		mockUserRepo{user: jobseekerWithResume(now, false)}, nil)
	_, err := uc.Apply(context.Background(), Caller{ID: 7, Role: user.RoleJobseeker}, 404)
	if !errors.Is(err, repository.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApply_InactiveJob(t *testing.T) {
	now := time.Now()
	uc := NewApplicationUsecase(&mockApplicationRepo{},
		mockJobRepo{job: repository.Job{ID: 33, IsActive: false}},
		mockUserRepo{user: jobseekerWithResume(now, false)}, nil)
	_, err := uc.Apply(context.Background(), Caller{ID: 7, Role: user.RoleJobseeker}, 33)
	if !errors.Is(err, ErrJobNotActive) {
		t.Fatalf("expected ErrJobNotActive, got %v", err)
	}
}

func TestApply_DuplicateMapsUniqueViolation(t *testing.T) {
	now := time.Now()
	sink := &captureSink{}
	uc := NewApplicationUsecase(
		&mockApplicationRepo{createErr: &pgconn.PgError{Code: "23505"}},
		mockJobRepo{job: repository.Job{ID: 33, IsActive: true}},
		mockUserRepo{user: jobseekerWithResume(now, false)},
		sink,
	)
	_, err := uc.Apply(context.Background(), Caller{ID: 7, Role: user.RoleJobseeker}, 33)
	if !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
	if len(sink.events) != 0 {
		t.Fatalf("no event expected on duplicate apply")
	}
}

func TestUpdateStatus_OwnerCanMoveToReviewed(t *testing.T) {
	sink := &captureSink{}
	apps := &mockApplicationRepo{
		withPoster: repository.Application{ID: 101, JobID: 33, ApplicantID: 7, ApplicantEmail: "asha@example.com", Status: repository.StatusSubmitted},
		posterID:   9,
		updated:    repository.Application{JobID: 33, ApplicantID: 7, ApplicantEmail: "asha@example.com"},
	}
	uc := NewApplicationUsecase(apps,
		mockJobRepo{job: repository.Job{ID: 33, Title: "Backend Engineer", PostedByRecruiterID: 9}},
		mockUserRepo{user: user.User{ID: 7, Name: "Asha"}},
		sink,
	)

	updated, err := uc.UpdateStatus(context.Background(), Caller{ID: 9, Role: user.RoleRecruiter}, 101, repository.StatusReviewed)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != repository.StatusReviewed {
		t.Fatalf("expected Reviewed, got %q", updated.Status)
	}
	if len(sink.events) != 1 {
		t.Fatalf("expected one event, got %d", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Type != notify.EventApplicationStatusChanged || ev.JobTitle != "Backend Engineer" || ev.ApplicantName != "Asha" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestUpdateStatus_NonOwnerForbidden(t *testing.T) {
	apps := &mockApplicationRepo{
		withPoster: repository.Application{ID: 101, JobID: 33},
		posterID:   9,
	}
	uc := NewApplicationUsecase(apps, mockJobRepo{}, mockUserRepo{}, nil)
	_, err := uc.UpdateStatus(context.Background(), Caller{ID: 5, Role: user.RoleRecruiter}, 101, repository.StatusHired)
	if !errors.Is(err, ErrNotJobOwner) {
		t.Fatalf("expected ErrNotJobOwner, got %v", err)
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	uc := NewApplicationUsecase(&mockApplicationRepo{}, mockJobRepo{}, mockUserRepo{}, nil)
	_, err := uc.UpdateStatus(context.Background(), Caller{ID: 9}, 101, "Archived")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	apps := &mockApplicationRepo{getErr: repository.ErrApplicationNotFound}
	uc := NewApplicationUsecase(apps, mockJobRepo{}, mockUserRepo{}, nil)
	_, err := uc.UpdateStatus(context.Background(), Caller{ID: 9}, 404, repository.StatusHired)
	if !errors.Is(err, ErrApplicationMissing) {
		t.Fatalf("expected ErrApplicationMissing, got %v", err)
	}
}

func TestUpdateStatus_IdempotentSameStatus(t *testing.T) {
	apps := &mockApplicationRepo{
		withPoster: repository.Application{ID: 101, JobID: 33, Status: repository.StatusHired},
		posterID:   9,
		updated:    repository.Application{JobID: 33},
	}
	uc := NewApplicationUsecase(apps, mockJobRepo{job: repository.Job{ID: 33}}, mockUserRepo{}, nil)

	updated, err := uc.UpdateStatus(context.Background(), Caller{ID: 9}, 101, repository.StatusHired)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != repository.StatusHired {
		t.Fatalf("expected Hired, got %q", updated.Status)
	}
}

func TestListForJob_OwnershipEnforced(t *testing.T) {
	apps := &mockApplicationRepo{byJob: []repository.Application{{ID: 101}, {ID: 102}}}
	uc := NewApplicationUsecase(apps,
		mockJobRepo{job: repository.Job{ID: 33, PostedByRecruiterID: 9}},
		mockUserRepo{}, nil)

	out, err := uc.ListForJob(context.Background(), Caller{ID: 9, Role: user.RoleRecruiter}, 33)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(out))
	}

	_, err = uc.ListForJob(context.Background(), Caller{ID: 5, Role: user.RoleRecruiter}, 33)
	if !errors.Is(err, ErrNotJobOwner) {
		t.Fatalf("expected ErrNotJobOwner, got %v", err)
	}
}
