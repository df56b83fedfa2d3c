package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"org-admin-service/internal/model"
	"org-admin-service/internal/repository"
	"org-admin-service/internal/service"
	"org-admin-service/internal/service/mocks"
)

func TestSessionService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := model.User{
		UserID:       "u1",
		Email:        "alice@example.com",
		Username:     "Alice",
		Role:         model.RoleAdmin,
		PasswordHash: string(hash),
	}

	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(ur *mocks.UserRepository, sr *mocks.SessionRepository)
		wantErr    bool
		wantStatus int
	}{
		{
			name:     "Success",
			email:    "alice@example.com",
			password: "secret",
			setupMocks: func(ur *mocks.UserRepository, sr *mocks.SessionRepository) {
				ur.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)
				sr.On("Create", mock.Anything, mock.AnythingOfType("model.Session")).Return(nil)
			},
		},
		{
			name:     "Fail: wrong password",
			email:    "alice@example.com",
			password: "wrong",
			setupMocks: func(ur *mocks.UserRepository, sr *mocks.SessionRepository) {
				ur.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)
			},
			wantErr:    true,
			wantStatus: 401,
		},
		{
			name:     "Fail: unknown email",
			email:    "nobody@example.com",
			password: "secret",
			setupMocks: func(ur *mocks.UserRepository, sr *mocks.SessionRepository) {
				ur.On("GetByEmail", mock.Anything, "nobody@example.com").
					Return(model.User{}, repository.ErrUserNotFound)
			},
			wantErr:    true,
			wantStatus: 401,
		},
		{
			name:     "Fail: empty password",
			email:    "alice@example.com",
			password: "",
			setupMocks: func(ur *mocks.UserRepository, sr *mocks.SessionRepository) {
			},
			wantErr:    true,
			wantStatus: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mocks.UserRepository)
			sessionRepo := new(mocks.SessionRepository)
			tt.setupMocks(userRepo, sessionRepo)

			svc := service.NewSessionService(sessionRepo, userRepo, time.Hour)
			session, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				appErr, ok := err.(*service.AppError)
				assert.True(t, ok)
				assert.Equal(t, tt.wantStatus, appErr.Status)
				sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, session.Token)
				assert.Equal(t, "u1", session.UserID)
				assert.True(t, session.ExpiresAt.After(time.Now().UTC()))
			}
			userRepo.AssertExpectations(t)
			sessionRepo.AssertExpectations(t)
		})
	}
}

func TestSessionService_Resolve(t *testing.T) {
	admin := model.User{UserID: "u1", Username: "Alice", Role: model.RoleAdmin, OrganizationID: strPtr("org1")}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)

		sessionRepo.On("GetUserByToken", mock.Anything, "tok-1", mock.AnythingOfType("time.Time")).
			Return(admin, nil)

		svc := service.NewSessionService(sessionRepo, userRepo, time.Hour)
		got, err := svc.Resolve(context.Background(), "tok-1")

		assert.NoError(t, err)
		assert.Equal(t, admin, got)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("Fail: expired or unknown token", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)

		sessionRepo.On("GetUserByToken", mock.Anything, "tok-dead", mock.AnythingOfType("time.Time")).
			Return(model.User{}, repository.ErrSessionNotFound)

		svc := service.NewSessionService(sessionRepo, userRepo, time.Hour)
		_, err := svc.Resolve(context.Background(), "tok-dead")

		assert.Error(t, err)
		appErr, ok := err.(*service.AppError)
		assert.True(t, ok)
		assert.Equal(t, 401, appErr.Status)
	})

	t.Run("Fail: empty token", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)

		svc := service.NewSessionService(sessionRepo, userRepo, time.Hour)
		_, err := svc.Resolve(context.Background(), "")

		assert.Error(t, err)
		sessionRepo.AssertNotCalled(t, "GetUserByToken", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSessionService_Logout(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	sessionRepo := new(mocks.SessionRepository)

	sessionRepo.On("Delete", mock.Anything, "tok-1").Return(nil)

	svc := service.NewSessionService(sessionRepo, userRepo, time.Hour)
	err := svc.Logout(context.Background(), "tok-1")

	assert.NoError(t, err)
	sessionRepo.AssertExpectations(t)
}
