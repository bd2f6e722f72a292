package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/cors"
	"github.com/unrolled/secure"
)

// corsMiddleware lets the browser admin console call the API from its own
// origin. Tokens travel in the Authorization header, not cookies.
func corsMiddleware(allowedOrigins []string) echo.MiddlewareFunc {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
		ExposedHeaders: []string{echo.HeaderXRequestID},
		MaxAge:         86400,
	})
	return echo.WrapMiddleware(c.Handler)
}

func secureHeaders(development bool) echo.MiddlewareFunc {
	s := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		STSSeconds:         31536000,
		IsDevelopment:      development,
	})
	return echo.WrapMiddleware(s.Handler)
}
