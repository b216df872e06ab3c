package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/auth"
	"github.com/paydesk/payroll-backend-go/internal/domain/authz"
	"github.com/paydesk/payroll-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || authz.Role(role) != authz.RoleAdmin {
			response.HandleError(w, authz.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
