package user

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("user not found")

type ProfileUpdate struct {
	Name        string
	PhoneNumber *string
	Bio         *string
}

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ListSkillNames returns the names of the user's linked skills, for the
	// public profile view.
	ListSkillNames(ctx context.Context, id int64) ([]string, error)

	UpdateProfile(ctx context.Context, id int64, in ProfileUpdate) (User, error)
	UpdateProfilePic(ctx context.Context, id int64, url, publicID string) (User, error)
	UpdateResume(ctx context.Context, id int64, url, publicID string) (User, error)
	SetSubscription(ctx context.Context, id int64, expiresAt time.Time) error
}
