package user

import (
	"time"
)

const (
	RoleJobseeker = "jobseeker"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID                 int64
	Name               string
	Email              string
	PasswordHash       string
	PhoneNumber        *string
	Bio                *string
	Role               string
	ProfilePic         *string
	ProfilePicPublicID *string
	Resume             *string
	ResumePublicID     *string
	Subscription       *time.Time
	CreatedAt          time.Time
}

// Subscribed reports whether the user holds an active subscription at the
// given instant. Applications snapshot this value at apply time.
func (u User) Subscribed(now time.Time) bool {
	return u.Subscription != nil && u.Subscription.After(now)
}

func ValidRole(role string) bool {
	return role == RoleJobseeker || role == RoleRecruiter
}
