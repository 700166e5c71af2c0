package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/turboost/store/pkg/logger"
	"github.com/turboost/store/pkg/response"
)

// Recovery catches panics in downstream handlers, logs the stack trace,
// and returns a generic 500. Add it before the handlers it should wrap.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.WithCtx(r.Context()).Error("panic recovered",
					"error", fmt.Sprintf("%v", err),
					"stack", string(debug.Stack()),
					"method", r.Method,
					"path", r.URL.Path,
				)
				response.Internal(w, "Erro interno do servidor.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
