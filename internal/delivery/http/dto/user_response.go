package dto

import (
	"time"

	"work-wizard/internal/domain/user"
)

type UserResponse struct {
	ID           int64      `json:"user_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PhoneNumber  *string    `json:"phone_number"`
	Bio          *string    `json:"bio"`
	Role         string     `json:"role"`
	ProfilePic   *string    `json:"profile_pic"`
	Resume       *string    `json:"resume"`
	Subscription *time.Time `json:"subscription"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PhoneNumber:  u.PhoneNumber,
		Bio:          u.Bio,
		Role:         u.Role,
		ProfilePic:   u.ProfilePic,
		Resume:       u.Resume,
		Subscription: u.Subscription,
		CreatedAt:    u.CreatedAt,
	}
}

type ProfileResponse struct {
	UserResponse
	Skills []string `json:"skills"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
