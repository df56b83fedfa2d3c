package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"org-admin-service/internal/model"
	"org-admin-service/internal/service"
)

// OrgService описывает контракт административных операций для HTTP-слоя.
type OrgService interface {
	GetOrganization(ctx context.Context, caller model.User) (*model.Organization, error)
	GetMembers(ctx context.Context, caller model.User) ([]model.OrgMember, error)
	ChangeUserRole(ctx context.Context, caller model.User, change model.RoleChangeType, userID string) error
}

// SessionService описывает контракт сервиса сессий для HTTP-слоя.
type SessionService interface {
	Login(ctx context.Context, email, password string) (model.Session, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (model.User, error)
}

// ScheduleService описывает контракт сервиса бронирований для HTTP-слоя.
type ScheduleService interface {
	CreateBooking(ctx context.Context, caller model.User, deskName string, startsAt, endsAt time.Time) (model.DeskSchedule, error)
	ListMy(ctx context.Context, caller model.User) ([]model.DeskSchedule, error)
}

type Handler struct {
	Orgs      OrgService
	Sessions  SessionService
	Schedules ScheduleService
	Log       *slog.Logger
}

func NewHandler(orgs OrgService, sessions SessionService, schedules ScheduleService, log *slog.Logger) *Handler {
	return &Handler{
		Orgs:      orgs,
		Sessions:  sessions,
		Schedules: schedules,
		Log:       log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", h.handleHealth)
	r.Post("/auth/login", h.handleLogin)

	// Все остальные маршруты требуют действующей сессии
	r.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Post("/auth/logout", h.handleLogout)

		r.Route("/organization", func(r chi.Router) {
			r.Get("/get", h.handleOrganizationGet)
			r.Get("/members", h.handleOrganizationMembers)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/changeRole", h.handleChangeRole)
		})

		r.Route("/deskSchedule", func(r chi.Router) {
			r.Post("/create", h.handleScheduleCreate)
			r.Get("/my", h.handleScheduleMy)
		})
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
