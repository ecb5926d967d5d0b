package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/DaySeven-BookingService/internal/api/handlers"
)

// AdminTokenHeader заголовок с токеном администратора
const AdminTokenHeader = "X-Admin-Token"

const (
	msgMissingAdminToken = "missing " + AdminTokenHeader + " header"
	msgInvalidAdminToken = "invalid admin token"
)

// AdminAuth пропускает запросы только с верным токеном администратора
// Без заголовка 401, с неверным токеном 403
func AdminAuth(token string) func(http.Handler) http.Handler {
	expected := []byte(token)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminTokenHeader)
			if got == "" {
				handlers.RespondUnauthorized(w, msgMissingAdminToken)
				return
			}

			if len(expected) == 0 || subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
				handlers.RespondForbidden(w, msgInvalidAdminToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
