package usecase

import (
	"context"
	"errors"
	"testing"

	"work-wizard/internal/repository"
)

type stubUserSkillRepo struct {
	added     bool
	addErr    error
	removeErr error
	gotName   string
}

func (s *stubUserSkillRepo) AddSkill(_ context.Context, _ int64, name string) (bool, error) {
	s.gotName = name
	return s.added, s.addErr
}

func (s *stubUserSkillRepo) RemoveSkill(_ context.Context, _ int64, name string) error {
	s.gotName = name
	return s.removeErr
}

func TestAddSkill_NormalizesName(t *testing.T) {
	repo := &stubUserSkillRepo{added: true}
	uc := NewUserSkillUsecase(repo)

	added, err := uc.AddSkill(context.Background(), Caller{ID: 7}, "  PostgreSQL ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !added {
		t.Fatalf("expected added=true")
	}
	if repo.gotName != "postgresql" {
		t.Fatalf("expected normalized name, got %q", repo.gotName)
	}
}

func TestAddSkill_AlreadyLinkedReportedWithoutError(t *testing.T) {
	uc := NewUserSkillUsecase(&stubUserSkillRepo{added: false})
	added, err := uc.AddSkill(context.Background(), Caller{ID: 7}, "go")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if added {
		t.Fatalf("expected added=false for existing link")
	}
}

func TestAddSkill_EmptyName(t *testing.T) {
	uc := NewUserSkillUsecase(&stubUserSkillRepo{})
	_, err := uc.AddSkill(context.Background(), Caller{ID: 7}, "   ")
	if !errors.Is(err, ErrInvalidSkillName) {
		t.Fatalf("expected ErrInvalidSkillName, got %v", err)
	}
}

func TestRemoveSkill_NotLinked(t *testing.T) {
	uc := NewUserSkillUsecase(&stubUserSkillRepo{removeErr: repository.ErrUserSkillNotFound})
	err := uc.RemoveSkill(context.Background(), Caller{ID: 7}, "go")
	if !errors.Is(err, ErrSkillNotLinked) {
		t.Fatalf("expected ErrSkillNotLinked, got %v", err)
	}
}
