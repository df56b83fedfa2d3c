package repository

import (
	"context"
	"errors"
	"fmt"

	"org-admin-service/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepo реализует репозиторий пользователей на базе PostgreSQL.
type UserRepo struct {
	db *Postgres
}

// NewUserRepo создаёт новый экземпляр UserRepo c переданным подключением к PostgreSQL.
func NewUserRepo(db *Postgres) *UserRepo {
	return &UserRepo{db: db}
}

// GetByID возвращает пользователя по его идентификатору вместе со ссылкой на организацию.
// Если пользователь не найден, возвращает ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, userID string) (model.User, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT id, email, username, role, organization_id
FROM users
WHERE id = $1
`, userID)

	var u model.User
	if err := row.Scan(&u.UserID, &u.Email, &u.Username, &u.Role, &u.OrganizationID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByEmail возвращает пользователя по email вместе с хэшем пароля.
// Используется при аутентификации. Если пользователь не найден, возвращает ErrUserNotFound.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT id, email, username, role, organization_id, password_hash
FROM users
WHERE email = $1
`, email)

	var u model.User
	if err := row.Scan(&u.UserID, &u.Email, &u.Username, &u.Role, &u.OrganizationID, &u.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// ListByOrganization возвращает всех пользователей, привязанных к организации,
// в стабильном порядке по идентификатору.
func (r *UserRepo) ListByOrganization(ctx context.Context, orgID string) ([]model.User, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT id, email, username, role, organization_id
FROM users
WHERE organization_id = $1
ORDER BY id
`, orgID)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UserID, &u.Email, &u.Username, &u.Role, &u.OrganizationID); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return users, nil
}

// UpdateRole обновляет роль пользователя и возвращает его актуальное состояние.
// Если пользователь не найден, возвращает ErrUserNotFound.
func (r *UserRepo) UpdateRole(ctx context.Context, userID string, role model.Role) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
UPDATE users
SET role = $2
WHERE id = $1
RETURNING id, email, username, role, organization_id
`, userID, role)

	var u model.User
	if err := row.Scan(&u.UserID, &u.Email, &u.Username, &u.Role, &u.OrganizationID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("update user role: %w", err)
	}
	return u, nil
}
