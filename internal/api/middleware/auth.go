package middleware

import (
	"net/http"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/api/handlers"
)

const msgMissingUserID = "отсутствует заголовок X-User-ID"

// Auth требует заголовок X-User-ID у запроса.
// Аутентификацию выполняет API-гейтвей, сервис доверяет заголовку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-User-ID") == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		next.ServeHTTP(w, r)
	})
}
