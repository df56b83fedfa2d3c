package repository

import (
	"context"
	"fmt"
	"time"

	"org-admin-service/internal/model"

	"github.com/jackc/pgx/v5"
)

// ScheduleRepo реализует репозиторий бронирований столов на базе PostgreSQL.
type ScheduleRepo struct {
	db *Postgres
}

// NewScheduleRepo создаёт новый экземпляр ScheduleRepo c переданным подключением к PostgreSQL.
func NewScheduleRepo(db *Postgres) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

func scanSchedules(rows pgx.Rows) ([]model.DeskSchedule, error) {
	defer rows.Close()

	schedules := make([]model.DeskSchedule, 0)
	for rows.Next() {
		var s model.DeskSchedule
		if err := rows.Scan(&s.ScheduleID, &s.UserID, &s.DeskName, &s.StartsAt, &s.EndsAt); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return schedules, nil
}

// ListForUsersStartingSince возвращает бронирования пользователей userIDs,
// начинающиеся не раньше from (верхней границы нет), в порядке начала.
func (r *ScheduleRepo) ListForUsersStartingSince(ctx context.Context, userIDs []string, from time.Time) ([]model.DeskSchedule, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT id, user_id, desk_name, starts_at, ends_at
FROM desk_schedules
WHERE user_id = ANY($1) AND starts_at >= $2
ORDER BY starts_at, id
`, userIDs, from)
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}
	return scanSchedules(rows)
}

// ListForUsersStartingBetween возвращает бронирования пользователей userIDs,
// начинающиеся в полуинтервале [from, to), в порядке начала.
func (r *ScheduleRepo) ListForUsersStartingBetween(ctx context.Context, userIDs []string, from, to time.Time) ([]model.DeskSchedule, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT id, user_id, desk_name, starts_at, ends_at
FROM desk_schedules
WHERE user_id = ANY($1) AND starts_at >= $2 AND starts_at < $3
ORDER BY starts_at, id
`, userIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}
	return scanSchedules(rows)
}

// ListByUser возвращает бронирования одного пользователя в порядке начала.
func (r *ScheduleRepo) ListByUser(ctx context.Context, userID string) ([]model.DeskSchedule, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT id, user_id, desk_name, starts_at, ends_at
FROM desk_schedules
WHERE user_id = $1
ORDER BY starts_at, id
`, userID)
	if err != nil {
		return nil, fmt.Errorf("query user schedules: %w", err)
	}
	return scanSchedules(rows)
}

// ExistsOverlapping сообщает, есть ли у пользователя бронирование,
// пересекающееся с интервалом [startsAt, endsAt).
func (r *ScheduleRepo) ExistsOverlapping(ctx context.Context, userID string, startsAt, endsAt time.Time) (bool, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
SELECT EXISTS (
	SELECT 1
	FROM desk_schedules
	WHERE user_id = $1 AND starts_at < $3 AND ends_at > $2
)
`, userID, startsAt, endsAt)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}
	return exists, nil
}

// Create сохраняет новое бронирование и возвращает его сохранённое состояние.
func (r *ScheduleRepo) Create(ctx context.Context, s model.DeskSchedule) (model.DeskSchedule, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
INSERT INTO desk_schedules (id, user_id, desk_name, starts_at, ends_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, desk_name, starts_at, ends_at
`, s.ScheduleID, s.UserID, s.DeskName, s.StartsAt, s.EndsAt)

	var created model.DeskSchedule
	if err := row.Scan(&created.ScheduleID, &created.UserID, &created.DeskName, &created.StartsAt, &created.EndsAt); err != nil {
		return model.DeskSchedule{}, fmt.Errorf("insert schedule: %w", err)
	}
	return created, nil
}
