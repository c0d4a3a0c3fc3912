package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/kaffeekasse/coffeebilling/internal/domain"
	"github.com/kaffeekasse/coffeebilling/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const userColumns = `id, name, first_name, email, password_hash, admin, member, token, status, created_at`

func (r *Repository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Name, &user.FirstName, &user.Email, &user.PasswordHash,
		&user.Admin, &user.Member, &user.Token, &user.Status, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE email = $1
    `
	user, err := r.scanUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `
	user, err := r.scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByToken(ctx context.Context, token string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE token = $1 AND token <> ''
    `
	user, err := r.scanUser(r.db.QueryRow(ctx, query, token))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by token", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (name, first_name, email, password_hash, admin, member, token, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + userColumns + `
    `
	created, err := r.scanUser(r.db.QueryRow(ctx, query,
		user.Name, user.FirstName, user.Email, user.PasswordHash,
		user.Admin, user.Member, user.Token, user.Status,
	))
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        UPDATE users
        SET name = $1, first_name = $2, email = $3, password_hash = $4,
            admin = $5, member = $6, token = $7, status = $8
        WHERE id = $9
        RETURNING ` + userColumns + `
    `
	updated, err := r.scanUser(r.db.QueryRow(ctx, query,
		user.Name, user.FirstName, user.Email, user.PasswordHash,
		user.Admin, user.Member, user.Token, user.Status, user.ID,
	))
	if err != nil {
		zap.L().Error("can't update user", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) ListActive(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE status = 'active'
        ORDER BY name, first_name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list active users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := r.scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

func (r *Repository) CountActiveMembers(ctx context.Context) (int, error) {
	query := `
        SELECT COUNT(id)
        FROM users
        WHERE status = 'active' AND member = TRUE
    `
	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		zap.L().Error("can't count active members", zap.Error(err))
		return 0, err
	}
	return count, nil
}
