package http

import (
	"encoding/json"
	"net/http"

	"org-admin-service/internal/model"
	"org-admin-service/internal/service"
)

func (h *Handler) handleChangeRole(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_change_role"

	caller, ok := callerFromContext(r.Context())
	if !ok {
		h.writeError(w, handlerName, service.ErrUnauthorized("session required"))
		return
	}

	var req changeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateChangeRoleRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	if err := h.Orgs.ChangeUserRole(ctx, caller, model.RoleChangeType(req.Type), req.UserID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
