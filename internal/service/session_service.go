package service

import (
	"context"
	"errors"
	"time"

	"org-admin-service/internal/model"
	"org-admin-service/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SessionRepository описывает контракт хранилища сессий для бизнес-слоя.
type SessionRepository interface {
	Create(ctx context.Context, s model.Session) error
	Delete(ctx context.Context, token string) error
	GetUserByToken(ctx context.Context, token string, now time.Time) (model.User, error)
}

// SessionService отвечает за аутентификацию и резолвинг сессий:
// выдачу и удаление токенов и получение пользователя по токену.
type SessionService struct {
	sessionRepo SessionRepository
	userRepo    UserRepository
	ttl         time.Duration
}

// NewSessionService создаёт новый сервис сессий с заданным временем жизни токена.
func NewSessionService(sessionRepo SessionRepository, userRepo UserRepository, ttl time.Duration) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		ttl:         ttl,
	}
}

// Login проверяет email и пароль и выдаёт новую сессию с непрозрачным токеном.
// Неизвестный email и неверный пароль неразличимы для клиента.
func (s *SessionService) Login(ctx context.Context, email, password string) (model.Session, error) {
	if email == "" || password == "" {
		return model.Session{}, ErrBadRequest("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.Session{}, ErrUnauthorized("invalid email or password")
		}
		return model.Session{}, errInternal("failed to get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.Session{}, ErrUnauthorized("invalid email or password")
	}

	session := model.Session{
		Token:     uuid.NewString(),
		UserID:    user.UserID,
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return model.Session{}, errInternal("failed to create session", err)
	}
	return session, nil
}

// Logout удаляет сессию по токену. Повторный выход по тому же токену — не ошибка.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthorized("session token required")
	}
	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		return errInternal("failed to delete session", err)
	}
	return nil
}

// Resolve возвращает пользователя действующей сессии вместе со ссылкой на организацию.
// Невалидный или истёкший токен даёт UNAUTHORIZED.
func (s *SessionService) Resolve(ctx context.Context, token string) (model.User, error) {
	if token == "" {
		return model.User{}, ErrUnauthorized("session token required")
	}
	user, err := s.sessionRepo.GetUserByToken(ctx, token, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return model.User{}, ErrUnauthorized("invalid or expired session")
		}
		return model.User{}, errInternal("failed to resolve session", err)
	}
	return user, nil
}
