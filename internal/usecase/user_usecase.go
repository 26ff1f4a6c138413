package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"work-wizard/internal/domain/user"
	"work-wizard/internal/infrastructure/upload"
)

var (
	ErrEmptyFile    = errors.New("empty file")
	ErrUploadFailed = errors.New("upload failed")
)

// UpdateProfileInput carries partial edits; nil fields keep the stored value.
type UpdateProfileInput struct {
	Name        *string
	PhoneNumber *string
	Bio         *string
}

type UserUsecase interface {
	Me(ctx context.Context, caller Caller) (user.User, error)
	Profile(ctx context.Context, userID int64) (user.User, []string, error)
	UpdateProfile(ctx context.Context, caller Caller, in UpdateProfileInput) (user.User, error)
	UpdateProfilePic(ctx context.Context, caller Caller, content []byte) (user.User, error)
	UpdateResume(ctx context.Context, caller Caller, content []byte) (user.User, error)
}

type Users struct {
	users    user.Repository
	uploader upload.Client
}

func NewUserUsecase(users user.Repository, uploader upload.Client) *Users {
	return &Users{users: users, uploader: uploader}
}

func (u *Users) Me(ctx context.Context, caller Caller) (user.User, error) {
	usr, err := u.users.GetByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}

// Profile returns the public view of a user together with their skill names.
func (u *Users) Profile(ctx context.Context, userID int64) (user.User, []string, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, nil, user.ErrNotFound
		}
		return user.User{}, nil, ErrInternal
	}

	skills, err := u.users.ListSkillNames(ctx, userID)
	if err != nil {
		return user.User{}, nil, ErrInternal
	}

	usr.PasswordHash = ""
	return usr, skills, nil
}

func (u *Users) UpdateProfile(ctx context.Context, caller Caller, in UpdateProfileInput) (user.User, error) {
	current, err := u.users.GetByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	next := user.ProfileUpdate{
		Name:        current.Name,
		PhoneNumber: current.PhoneNumber,
		Bio:         current.Bio,
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		next.Name = strings.TrimSpace(*in.Name)
	}
	if in.PhoneNumber != nil {
		next.PhoneNumber = in.PhoneNumber
	}
	if in.Bio != nil {
		next.Bio = in.Bio
	}

	updated, err := u.users.UpdateProfile(ctx, caller.ID, next)
	if err != nil {
		return user.User{}, ErrInternal
	}
	updated.PasswordHash = ""
	return updated, nil
}

func (u *Users) UpdateProfilePic(ctx context.Context, caller Caller, content []byte) (user.User, error) {
	return u.uploadInto(ctx, caller, content,
		fmt.Sprintf("users/%d/profile_pic", caller.ID), u.users.UpdateProfilePic)
}

func (u *Users) UpdateResume(ctx context.Context, caller Caller, content []byte) (user.User, error) {
	return u.uploadInto(ctx, caller, content,
		fmt.Sprintf("users/%d/resume", caller.ID), u.users.UpdateResume)
}

func (u *Users) uploadInto(
	ctx context.Context,
	caller Caller,
	content []byte,
	publicID string,
	store func(ctx context.Context, id int64, url, publicID string) (user.User, error),
) (user.User, error) {
	if len(content) == 0 {
		return user.User{}, ErrEmptyFile
	}

	res, err := u.uploader.Upload(ctx, content, publicID)
	if err != nil {
		return user.User{}, ErrUploadFailed
	}

	updated, err := store(ctx, caller.ID, res.URL, res.PublicID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	updated.PasswordHash = ""
	return updated, nil
}

var _ UserUsecase = (*Users)(nil)
