package usecase

import (
	"context"
	"errors"
	"strings"

	"work-wizard/internal/repository"
)

var (
	ErrInvalidSkillName = errors.New("invalid skill name")
	ErrSkillNotLinked   = errors.New("skill not linked to user")
)

type UserSkillUsecase interface {
	// AddSkill links the named skill to the caller, creating the skill row
	// if needed. Returns false when the link already existed.
	AddSkill(ctx context.Context, caller Caller, skillName string) (bool, error)
	RemoveSkill(ctx context.Context, caller Caller, skillName string) error
}

type UserSkills struct {
	skills repository.UserSkillRepository
}

func NewUserSkillUsecase(skills repository.UserSkillRepository) *UserSkills {
	return &UserSkills{skills: skills}
}

func (u *UserSkills) AddSkill(ctx context.Context, caller Caller, skillName string) (bool, error) {
	name := normalizeSkillName(skillName)
	if name == "" {
		return false, ErrInvalidSkillName
	}

	added, err := u.skills.AddSkill(ctx, caller.ID, name)
	if err != nil {
		return false, ErrInternal
	}
	return added, nil
}

func (u *UserSkills) RemoveSkill(ctx context.Context, caller Caller, skillName string) error {
	name := normalizeSkillName(skillName)
	if name == "" {
		return ErrInvalidSkillName
	}

	if err := u.skills.RemoveSkill(ctx, caller.ID, name); err != nil {
		if errors.Is(err, repository.ErrUserSkillNotFound) {
			return ErrSkillNotLinked
		}
		return ErrInternal
	}
	return nil
}

func normalizeSkillName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

var _ UserSkillUsecase = (*UserSkills)(nil)
