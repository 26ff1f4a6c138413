package usecase

import (
	"context"
	"errors"
	"testing"

	"work-wizard/internal/domain/user"
	"work-wizard/internal/repository"
)

type stubJobRepo struct {
	mockJobRepo
	owned     bool
	ownedErr  error
	created   *repository.Job
	listed    []repository.ActiveJobRow
	listedErr error
}

func (s *stubJobRepo) Create(_ context.Context, j repository.Job) (repository.Job, error) {
	j.ID = 42
	s.created = &j
	return j, nil
}

func (s *stubJobRepo) CompanyOwnedBy(context.Context, int64, int64) (bool, error) {
	return s.owned, s.ownedErr
}

func (s *stubJobRepo) ListActive(context.Context, repository.ActiveJobFilter) ([]repository.ActiveJobRow, error) {
	return s.listed, s.listedErr
}

func TestJobCreate_RequiresRecruiterRole(t *testing.T) {
	uc := NewJobUsecase(&stubJobRepo{owned: true}, nil, 0)
	_, err := uc.Create(context.Background(), Caller{ID: 7, Role: user.RoleJobseeker}, CreateJobInput{Title: "x", CompanyID: 1})
	if !errors.Is(err, ErrNotRecruiter) {
		t.Fatalf("expected ErrNotRecruiter, got %v", err)
	}
}

func TestJobCreate_RejectsForeignCompany(t *testing.T) {
	uc := NewJobUsecase(&stubJobRepo{owned: false}, nil, 0)
	_, err := uc.Create(context.Background(), Caller{ID: 9, Role: user.RoleRecruiter}, CreateJobInput{Title: "Backend Engineer", CompanyID: 3})
	if !errors.Is(err, repository.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestJobCreate_StampsPostingRecruiter(t *testing.T) {
	repo := &stubJobRepo{owned: true}
	uc := NewJobUsecase(repo, nil, 0)

	created, err := uc.Create(context.Background(), Caller{ID: 9, Role: user.RoleRecruiter}, CreateJobInput{
		Title:     "Backend Engineer",
		CompanyID: 3,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.PostedByRecruiterID != 9 {
		t.Fatalf("expected poster 9, got %d", created.PostedByRecruiterID)
	}
	if repo.created.Openings != 1 {
		t.Fatalf("expected default openings 1, got %d", repo.created.Openings)
	}
}

func TestJobUpdate_OnlyPosterMayEdit(t *testing.T) {
	uc := NewJobUsecase(&stubJobRepo{mockJobRepo: mockJobRepo{
		job: repository.Job{ID: 42, PostedByRecruiterID: 9},
	}}, nil, 0)

	_, err := uc.Update(context.Background(), Caller{ID: 5, Role: user.RoleRecruiter}, 42, repository.JobUpdate{Title: "x"})
	if !errors.Is(err, ErrNotJobOwner) {
		t.Fatalf("expected ErrNotJobOwner, got %v", err)
	}
}

func TestListActive_FallsThroughWithoutCache(t *testing.T) {
	uc := NewJobUsecase(&stubJobRepo{listed: []repository.ActiveJobRow{
		{Job: repository.Job{ID: 1, Title: "Go Developer"}, CompanyName: "Acme"},
	}}, nil, 0)

	rows, err := uc.ListActive(context.Background(), repository.ActiveJobFilter{Title: "go"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 1 || rows[0].CompanyName != "Acme" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
