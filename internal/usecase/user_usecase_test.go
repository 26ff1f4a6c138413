package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"work-wizard/internal/infrastructure/upload"
)

func TestUpdateResume_UnconfiguredUploaderFailsCleanly(t *testing.T) {
	uc := NewUserUsecase(
		mockUserRepo{user: jobseekerWithResume(time.Now(), false)},
		upload.NewClient("", nil),
	)

	_, err := uc.UpdateResume(context.Background(), Caller{ID: 7}, []byte("pdf bytes"))
	if !errors.Is(err, ErrUploadFailed) {
		t.Fatalf("err = %v, want ErrUploadFailed", err)
	}
}

func TestUpdateProfilePic_EmptyFile(t *testing.T) {
	uc := NewUserUsecase(
		mockUserRepo{user: jobseekerWithResume(time.Now(), false)},
		upload.NewClient("", nil),
	)

	_, err := uc.UpdateProfilePic(context.Background(), Caller{ID: 7}, nil)
	if !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("err = %v, want ErrEmptyFile", err)
	}
}
