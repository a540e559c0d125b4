package middleware

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"tavolo/config"
	"tavolo/infras/otel"
	"tavolo/shared/cache"
	"tavolo/shared/constant"
	"tavolo/shared/failure"
	"tavolo/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing() func(http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
	RequireAPIKey() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

func (a *appMiddleware) Tracing() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

			ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
			defer scope.End()

			scope.SetAttributes(map[string]any{
				"app.name":        a.config.App.Name,
				"http.path":       r.URL.Path,
				"http.route":      routePattern(r),
				"http.method":     r.Method,
				"http.user_agent": r.Header.Get(constant.RequestHeaderUserAgent),
				"http.host":       r.Host,
				"http.source":     a.getClientIP(r),
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAPIKey guards the management surface (tables, opening hours).
// Guest-facing availability and reservation routes stay open.
func (a *appMiddleware) RequireAPIKey() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			configured := a.config.App.APIKey
			if configured == "" {
				next.ServeHTTP(w, r)

				return
			}

			provided := r.Header.Get(constant.RequestHeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(configured)) != 1 {
				response.WithError(w, failure.Unauthorized("invalid API key"))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func routePattern(r *http.Request) string {
	routeContext := chi.RouteContext(r.Context())
	if routeContext == nil {
		return r.URL.Path
	}

	return routeContext.RoutePattern()
}
