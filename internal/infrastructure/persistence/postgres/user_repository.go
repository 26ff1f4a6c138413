package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"work-wizard/internal/database"
	"work-wizard/internal/domain/user"

	"github.com/jackc/pgx/v5"
)

const userColumns = `user_id, name, email, password_hash, phone_number, bio, role,
	profile_pic, profile_pic_public_id, resume, resume_public_id, subscription, created_at`

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, phone_number, bio, role)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+userColumns,
		u.Name, u.Email, u.PasswordHash, u.PhoneNumber, u.Bio, u.Role,
	)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) ListSkillNames(ctx context.Context, id int64) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.name
		 FROM user_skills us
		 JOIN skills s ON s.skill_id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY s.name ASC`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, in user.ProfileUpdate) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE users SET name = $1, phone_number = $2, bio = $3
		 WHERE user_id = $4
		 RETURNING `+userColumns,
		in.Name, in.PhoneNumber, in.Bio, id,
	)
	return scanUser(row)
}

func (r *UserRepository) UpdateProfilePic(ctx context.Context, id int64, url, publicID string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE users SET profile_pic = $1, profile_pic_public_id = $2
		 WHERE user_id = $3
		 RETURNING `+userColumns,
		url, publicID, id,
	)
	return scanUser(row)
}

func (r *UserRepository) UpdateResume(ctx context.Context, id int64, url, publicID string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE users SET resume = $1, resume_public_id = $2
		 WHERE user_id = $3
		 RETURNING `+userColumns,
		url, publicID, id,
	)
	return scanUser(row)
}

func (r *UserRepository) SetSubscription(ctx context.Context, id int64, expiresAt time.Time) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE users SET subscription = $1 WHERE user_id = $2`,
		expiresAt, id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.PhoneNumber, &u.Bio, &u.Role,
		&u.ProfilePic, &u.ProfilePicPublicID, &u.Resume, &u.ResumePublicID,
		&u.Subscription, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

var _ user.Repository = (*UserRepository)(nil)
