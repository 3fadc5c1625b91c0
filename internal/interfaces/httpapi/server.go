package httpapi

import (
	"net/http"

	"github.com/riskibarqy/pool-league/internal/platform/logging"
)

// RouterOptions carries the cross-cutting pieces of the router. Metrics may be nil.
type RouterOptions struct {
	CORSAllowedOrigins []string
	AdminToken         string
	Metrics            RequestObserver
	MetricsHandler     http.Handler
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.MetricsHandler)
	registerGameRoutes(mux, handler)
	registerStatsRoutes(mux, handler)
	registerSeasonRoutes(mux, handler, opts.AdminToken)
	registerFantasyRoutes(mux, handler)

	return RequestTracing(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, RequestMetrics(opts.Metrics, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
