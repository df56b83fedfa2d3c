package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"org-admin-service/internal/model"

	"github.com/jackc/pgx/v5"
)

// SessionRepo реализует хранилище сессий на базе PostgreSQL.
type SessionRepo struct {
	db *Postgres
}

// NewSessionRepo создаёт новый экземпляр SessionRepo c переданным подключением к PostgreSQL.
func NewSessionRepo(db *Postgres) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create сохраняет новую сессию.
func (r *SessionRepo) Create(ctx context.Context, s model.Session) error {
	_, err := r.db.Pool.Exec(ctx, `
INSERT INTO sessions (token, user_id, expires_at)
VALUES ($1, $2, $3)
`, s.Token, s.UserID, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Delete удаляет сессию по токену. Отсутствующий токен ошибкой не считается.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// GetUserByToken возвращает пользователя действующей сессии вместе со ссылкой
// на организацию. Если сессия не найдена или истекла на момент now,
// возвращает ErrSessionNotFound.
func (r *SessionRepo) GetUserByToken(ctx context.Context, token string, now time.Time) (model.User, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT u.id, u.email, u.username, u.role, u.organization_id
FROM sessions s
JOIN users u ON u.id = s.user_id
WHERE s.token = $1 AND s.expires_at > $2
`, token, now)

	var u model.User
	if err := row.Scan(&u.UserID, &u.Email, &u.Username, &u.Role, &u.OrganizationID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrSessionNotFound
		}
		return model.User{}, fmt.Errorf("get session user: %w", err)
	}
	return u, nil
}
