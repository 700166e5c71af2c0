// Package middleware provides the HTTP middleware stack.
package middleware

import (
	"net/http"

	"github.com/turboost/store/pkg/response"
	"github.com/turboost/store/pkg/session"
)

// RequireAdmin guards a route behind the session login flag. Requests
// without an authenticated admin session get a 401 and never reach the
// handler, so no write can happen.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !session.FromCtx(r).GetBool(session.AdminLoggedIn) {
			response.Unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
