package transport

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/timetrkkr/timetrkkr/constant"
	redisrepo "github.com/timetrkkr/timetrkkr/repository/redis"
	"github.com/timetrkkr/timetrkkr/utils/errors"
	"github.com/timetrkkr/timetrkkr/utils/logger"
	"go.uber.org/zap"
)

// RateLimitMiddleware caps requests per client IP using a Redis counter
// with a rolling window. Redis being down never blocks traffic.
func RateLimitMiddleware(redisRepo redisrepo.Repository, limit int64, window time.Duration) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			key := fmt.Sprintf("ratelimit:%s", ip)
			count, err := redisRepo.IncrWithTTL(r.Context(), key, window)
			if err != nil {
				logger.Warn("rate limit counter unavailable", zap.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			if count > limit {
				writeError(w, errors.SetCustomErrorMessage(constant.ErrForbidden, "Too many requests"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
