package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"work-wizard/internal/domain/user"
)

type mockUserRepo struct {
	existing map[string]user.User
	created  *user.User
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	u.ID = 1
	m.created = &u
	return u, nil
}

func (m *mockUserRepo) GetByID(context.Context, int64) (user.User, error) {
	if m.created != nil {
		return *m.created, nil
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if u, ok := m.existing[email]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.existing[email]
	return ok, nil
}

func (m *mockUserRepo) ListSkillNames(context.Context, int64) ([]string, error) { return nil, nil }
func (m *mockUserRepo) UpdateProfile(context.Context, int64, user.ProfileUpdate) (user.User, error) {
	return user.User{}, nil
}
func (m *mockUserRepo) UpdateProfilePic(context.Context, int64, string, string) (user.User, error) {
	return user.User{}, nil
}
func (m *mockUserRepo) UpdateResume(context.Context, int64, string, string) (user.User, error) {
	return user.User{}, nil
}
func (m *mockUserRepo) SetSubscription(context.Context, int64, time.Time) error { return nil }

func TestRegister_HashesPasswordAndKeepsRole(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewService(repo)

	got, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Asha",
		Email:    "Asha@Example.com",
		Password: "correct horse",
		Role:     user.RoleRecruiter,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Email != "asha@example.com" {
		t.Fatalf("email not normalized: %q", got.Email)
	}
	if got.Role != user.RoleRecruiter {
		t.Fatalf("role not kept: %q", got.Role)
	}
	if got.PasswordHash != "" {
		t.Fatalf("hash leaked in returned user")
	}
	if repo.created == nil {
		t.Fatalf("user not stored")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("correct horse")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{existing: map[string]user.User{
		"asha@example.com": {ID: 1, Email: "asha@example.com"},
	}}
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "correct horse",
		Role:     user.RoleJobseeker,
	})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_InvalidInput(t *testing.T) {
	svc := NewService(&mockUserRepo{})

	cases := []RegisterInput{
		{Name: "Asha", Email: "", Password: "correct horse", Role: user.RoleJobseeker},
		{Name: "", Email: "a@b.co", Password: "correct horse", Role: user.RoleJobseeker},
		{Name: "Asha", Email: "a@b.co", Password: "short", Role: user.RoleJobseeker},
		{Name: "Asha", Email: "a@b.co", Password: "correct horse", Role: "admin"},
	}
	for i, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.DefaultCost)
	repo := &mockUserRepo{existing: map[string]user.User{
		"asha@example.com": {ID: 1, Email: "asha@example.com", PasswordHash: string(hash)},
	}}
	svc := NewService(repo)

	_, err := svc.Login(context.Background(), LoginInput{Email: "asha@example.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(&mockUserRepo{})
	_, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "whatever1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.DefaultCost)
	repo := &mockUserRepo{existing: map[string]user.User{
		"asha@example.com": {ID: 1, Email: "asha@example.com", PasswordHash: string(hash), Role: user.RoleJobseeker},
	}}
	svc := NewService(repo)

	got, err := svc.Login(context.Background(), LoginInput{Email: " Asha@example.com ", Password: "correct horse"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != 1 || got.PasswordHash != "" {
		t.Fatalf("unexpected user: %+v", got)
	}
}
