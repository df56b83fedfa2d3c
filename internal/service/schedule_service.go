package service

import (
	"context"
	"time"

	"org-admin-service/internal/model"

	"github.com/google/uuid"
)

// TransactionManager описывает интерфейс для управления транзакциями (чтобы можно было мокать).
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ScheduleService инкапсулирует самостоятельное бронирование столов участниками.
type ScheduleService struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
}

// NewScheduleService создаёт новый сервис бронирований.
func NewScheduleService(scheduleRepo ScheduleRepository, txManager TransactionManager) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
	}
}

// CreateBooking бронирует стол для вызывающего на интервал [startsAt, endsAt).
// Проверка пересечения с существующими бронированиями и вставка выполняются
// в одной транзакции.
func (s *ScheduleService) CreateBooking(ctx context.Context, caller model.User, deskName string, startsAt, endsAt time.Time) (model.DeskSchedule, error) {
	if !endsAt.After(startsAt) {
		return model.DeskSchedule{}, ErrBadRequest("ends_at must be after starts_at")
	}

	userID := caller.UserID
	input := model.DeskSchedule{
		ScheduleID: uuid.NewString(),
		UserID:     &userID,
		DeskName:   deskName,
		StartsAt:   startsAt.UTC(),
		EndsAt:     endsAt.UTC(),
	}

	var created model.DeskSchedule
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		overlap, errTx := s.scheduleRepo.ExistsOverlapping(ctx, userID, input.StartsAt, input.EndsAt)
		if errTx != nil {
			return errTx
		}
		if overlap {
			return ErrDomain("SCHEDULE_OVERLAP", "user already has a booking in this interval")
		}
		created, errTx = s.scheduleRepo.Create(ctx, input)
		return errTx
	})
	if err != nil {
		if app, ok := err.(*AppError); ok {
			return model.DeskSchedule{}, app
		}
		return model.DeskSchedule{}, errInternal("failed to create booking", err)
	}

	return created, nil
}

// ListMy возвращает бронирования вызывающего в порядке начала.
func (s *ScheduleService) ListMy(ctx context.Context, caller model.User) ([]model.DeskSchedule, error) {
	schedules, err := s.scheduleRepo.ListByUser(ctx, caller.UserID)
	if err != nil {
		return nil, errInternal("failed to list bookings", err)
	}
	return schedules, nil
}
