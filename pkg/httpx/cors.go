package httpx

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS lets browser clients on the listed origins call the API with their
// auth cookies. Other origins get no Access-Control headers and the browser
// blocks the response. An empty list disables CORS entirely; rs/cors would
// otherwise treat it as "*".
func CORS(allowedOrigins []string) Middleware {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodPatch, http.MethodOptions,
		},
		AllowedHeaders:       []string{"Content-Type", "Authorization", "X-Requested-With", "X-Request-ID"},
		ExposedHeaders:       []string{"X-Request-ID", "Retry-After"},
		OptionsSuccessStatus: http.StatusOK,
	})
	return c.Handler
}
