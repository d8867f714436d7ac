package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/khalil-js/VETANIMALIA/internal/cfg"
)

type sessionCtxKey struct{}

// SessionMiddleware выдаёт каждому покупателю cookie с идентификатором сессии
// и кладёт идентификатор в контекст запроса. Сессия играет роль «origin»
// браузерного localStorage: на неё скоуплены ключи корзины и контакта.
type SessionMiddleware struct {
	cfg *cfg.SessionCfg
}

func NewSessionMiddleware(cfg *cfg.SessionCfg) *SessionMiddleware {
	return &SessionMiddleware{cfg: cfg}
}

func (m *SessionMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := m.sessionID(r)

		http.SetCookie(w, &http.Cookie{
			Name:     m.cfg.CookieName,
			Value:    sessionID,
			Path:     "/",
			MaxAge:   int(m.cfg.CookieTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		ctx := context.WithValue(r.Context(), sessionCtxKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionID возвращает идентификатор из cookie либо выпускает новый.
func (m *SessionMiddleware) sessionID(r *http.Request) string {
	if c, err := r.Cookie(m.cfg.CookieName); err == nil && c.Value != "" {
		return c.Value
	}

	return uuid.NewString()
}

// SessionIDFromCtx извлекает идентификатор сессии из контекста запроса.
func SessionIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(sessionCtxKey{}).(string)
	return id
}
