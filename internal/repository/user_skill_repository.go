package repository

import (
	"context"
	"errors"
	"strings"

	"work-wizard/internal/database"
)

var ErrUserSkillNotFound = errors.New("skill not found")

type UserSkillRepository interface {
	// AddSkill upserts the skill by name and links it to the user inside a
	// single transaction. Returns false when the link already existed.
	AddSkill(ctx context.Context, userID int64, skillName string) (bool, error)

	// RemoveSkill unlinks the named skill; the skill row itself stays.
	RemoveSkill(ctx context.Context, userID int64, skillName string) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) AddSkill(ctx context.Context, userID int64, skillName string) (bool, error) {
	name := strings.TrimSpace(skillName)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var skillID int64
	row := tx.QueryRow(ctx,
		`INSERT INTO skills (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING skill_id`,
		name,
	)
	if err := row.Scan(&skillID); err != nil {
		return false, err
	}

	affected, err := tx.Exec(ctx,
		`INSERT INTO user_skills (user_id, skill_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, skill_id) DO NOTHING`,
		userID, skillID,
	)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresUserSkillRepository) RemoveSkill(ctx context.Context, userID int64, skillName string) error {
	name := strings.TrimSpace(skillName)

	affected, err := r.db.Exec(ctx,
		`DELETE FROM user_skills
		 WHERE user_id = $1 AND skill_id = (SELECT skill_id FROM skills WHERE name = $2)`,
		userID, name,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserSkillNotFound
	}
	return nil
}

var _ UserSkillRepository = (*PostgresUserSkillRepository)(nil)
