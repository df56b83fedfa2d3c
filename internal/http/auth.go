package http

import (
	"encoding/json"
	"net/http"

	"org-admin-service/internal/service"
)

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	const handlerName = "auth_login"

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateLoginRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	session, err := h.Sessions.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	resp := loginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	const handlerName = "auth_logout"

	ctx := r.Context()
	if err := h.Sessions.Logout(ctx, sessionToken(r)); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
