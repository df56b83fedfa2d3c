package repository

import "errors"

var (
	// ErrUserNotFound возвращается, если пользователь не найден в БД.
	ErrUserNotFound = errors.New("user not found")

	// ErrOrganizationNotFound возвращается, если организация не найдена.
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrSessionNotFound возвращается, если сессия не найдена или истекла.
	ErrSessionNotFound = errors.New("session not found")

	// ErrScheduleNotFound возвращается, если бронирование не найдено.
	ErrScheduleNotFound = errors.New("desk schedule not found")
)
