package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
)

const msgUnauthorized = "требуется авторизация сотрудника"

// WorkerAuth пропускает запрос дальше только с распознанным сотрудником
// и кладет его ID в контекст запроса
func WorkerAuth(resolver PrincipalResolver, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			workerID, err := resolver.Resolve(r)
			if err != nil {
				logger.Warn("%s %s - Unauthorized: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(handlers.WithWorkerID(r.Context(), workerID)))
		})
	}
}
