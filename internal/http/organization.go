package http

import (
	"encoding/json"
	"net/http"

	"org-admin-service/internal/service"
)

func (h *Handler) handleOrganizationGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "organization_get"

	caller, ok := callerFromContext(r.Context())
	if !ok {
		h.writeError(w, handlerName, service.ErrUnauthorized("session required"))
		return
	}

	ctx := r.Context()
	org, err := h.Orgs.GetOrganization(ctx, caller)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	// org может быть nil: организация не найдена в хранилище — это не ошибка
	w.Header().Set("Content-Type", "application/json")
	resp := organizationResponse{Organization: org}
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleOrganizationMembers(w http.ResponseWriter, r *http.Request) {
	const handlerName = "organization_members"

	caller, ok := callerFromContext(r.Context())
	if !ok {
		h.writeError(w, handlerName, service.ErrUnauthorized("session required"))
		return
	}

	ctx := r.Context()
	members, err := h.Orgs.GetMembers(ctx, caller)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	resp := membersResponse{Members: members}
	_ = json.NewEncoder(w).Encode(resp)
}
