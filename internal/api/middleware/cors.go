package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/m04kA/SMC-ShiftService/internal/integrations/principal"
)

// CORSConfig настройки CORS для панели сотрудника
type CORSConfig struct {
	AllowedOrigins []string
	MaxAge         int
}

// CORS оборачивает handler политикой CORS
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Authorization", "Content-Type", principal.HeaderUserID},
		AllowCredentials: true,
		MaxAge:           cfg.MaxAge,
	})
	return c.Handler
}
