package http

import (
	"context"
	"net/http"
	"strings"

	"org-admin-service/internal/model"
)

type callerKey struct{}

// sessionToken извлекает токен сессии из заголовка Authorization
// (схема Bearer) или, как запасной вариант, из X-Session-Token.
func sessionToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return r.Header.Get("X-Session-Token")
}

// withSession резолвит сессию и кладёт пользователя в контекст запроса.
// Невалидный или истёкший токен обрывает запрос со статусом 401.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, err := h.Sessions.Resolve(r.Context(), sessionToken(r))
		if err != nil {
			h.writeError(w, "with_session", err)
			return
		}

		ctx := context.WithValue(r.Context(), callerKey{}, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// callerFromContext возвращает пользователя, положенного в контекст middleware'ом withSession.
func callerFromContext(ctx context.Context) (model.User, bool) {
	caller, ok := ctx.Value(callerKey{}).(model.User)
	return caller, ok
}
