package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/AGIA-RentalService/internal/api/handlers"
)

// HeaderUserID заголовок с идентификатором пользователя
// Проставляется вышестоящим шлюзом после аутентификации
const HeaderUserID = "X-User-ID"

type ctxKey struct{}

var userIDKey = ctxKey{}

// Auth middleware аутентификации: требует непустой X-User-ID
// и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, "требуется заголовок X-User-ID")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
