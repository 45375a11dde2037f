package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CampService/internal/api/handlers"
	"github.com/m04kA/SMC-CampService/internal/domain"
)

type ctxKey string

const (
	userIDKey   ctxKey = "userID"
	userRoleKey ctxKey = "userRole"
	eventIDKey  ctxKey = "eventID"

	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
	headerEventID  = "X-Event-ID"
)

// Identity данные пользователя из заголовков шлюза
type Identity struct {
	UserID  int64
	Role    domain.Role
	EventID *int64
}

// Auth извлекает идентификацию из заголовков шлюза и кладет её в контекст.
// Шлюз уже аутентифицировал пользователя; здесь только разбор заголовков
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(headerUserID)
		if rawID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-User-ID")
			return
		}
		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-ID")
			return
		}

		role := domain.Role(r.Header.Get(headerUserRole))
		if !domain.IsValidRole(role) {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-Role")
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)

		if rawEvent := r.Header.Get(headerEventID); rawEvent != "" {
			eventID, err := strconv.ParseInt(rawEvent, 10, 64)
			if err != nil || eventID <= 0 {
				handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-Event-ID")
				return
			}
			ctx = context.WithValue(ctx, eventIDKey, eventID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetUserRole возвращает роль пользователя из контекста
func GetUserRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(userRoleKey).(domain.Role)
	return role, ok
}

// GetEventID возвращает событие пользователя из контекста, если шлюз его передал
func GetEventID(ctx context.Context) *int64 {
	if id, ok := ctx.Value(eventIDKey).(int64); ok {
		return &id
	}
	return nil
}
