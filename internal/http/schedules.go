package http

import (
	"encoding/json"
	"net/http"

	"org-admin-service/internal/service"
)

func (h *Handler) handleScheduleCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "schedule_create"

	caller, ok := callerFromContext(r.Context())
	if !ok {
		h.writeError(w, handlerName, service.ErrUnauthorized("session required"))
		return
	}

	var req createScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateCreateScheduleRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	created, err := h.Schedules.CreateBooking(ctx, caller, req.DeskName, req.StartsAt, req.EndsAt)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	resp := scheduleResponse{DeskSchedule: created}
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleScheduleMy(w http.ResponseWriter, r *http.Request) {
	const handlerName = "schedule_my"

	caller, ok := callerFromContext(r.Context())
	if !ok {
		h.writeError(w, handlerName, service.ErrUnauthorized("session required"))
		return
	}

	ctx := r.Context()
	schedules, err := h.Schedules.ListMy(ctx, caller)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	resp := mySchedulesResponse{
		UserID:        caller.UserID,
		DeskSchedules: schedules,
	}
	_ = json.NewEncoder(w).Encode(resp)
}
