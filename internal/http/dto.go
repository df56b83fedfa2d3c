// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import (
	"time"

	"org-admin-service/internal/model"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type organizationResponse struct {
	Organization *model.Organization `json:"organization"`
}

type membersResponse struct {
	Members []model.OrgMember `json:"members"`
}

type changeRoleRequest struct {
	Type   string `json:"type" validate:"required,oneof=PROMOTE_TO_ADMIN DEMOTE_FROM_ADMIN"`
	UserID string `json:"user_id" validate:"required,uuid"`
}

type createScheduleRequest struct {
	DeskName string    `json:"desk_name" validate:"required"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	EndsAt   time.Time `json:"ends_at" validate:"required"`
}

type scheduleResponse struct {
	DeskSchedule model.DeskSchedule `json:"desk_schedule"`
}

type mySchedulesResponse struct {
	UserID        string               `json:"user_id"`
	DeskSchedules []model.DeskSchedule `json:"desk_schedules"`
}
