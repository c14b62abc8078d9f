package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ecodive/backoffice-server-go/internal/audit"
	apperrors "github.com/ecodive/backoffice-server-go/internal/errors"
	"github.com/ecodive/backoffice-server-go/internal/httputil"
	"github.com/ecodive/backoffice-server-go/internal/metrics"
	"github.com/ecodive/backoffice-server-go/internal/redis"
	"github.com/ecodive/backoffice-server-go/internal/service"
)

const msgTooManyLogins = "Too many login attempts. Please try again later."

type Limiter interface {
	CheckLimit(ctx context.Context, key string, limit int, window time.Duration) service.Decision
}

// LoginRateLimiter caps login attempts per client address.
type LoginRateLimiter struct {
	limiter Limiter
	limit   int
	window  time.Duration
}

func NewLoginRateLimiter(limiter Limiter, limit int, window time.Duration) *LoginRateLimiter {
	return &LoginRateLimiter{limiter: limiter, limit: limit, window: window}
}

func (l *LoginRateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := audit.ClientIP(r)
		decision := l.limiter.CheckLimit(r.Context(), redis.LoginAttemptsKey(ip), l.limit, l.window)

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

		if !decision.Allowed {
			retryAfter := decision.RetryAfter(time.Now())
			log.Warn().Str("ip", ip).Dur("retry_after", retryAfter).Msg("login rate limit exceeded")
			metrics.RateLimitedTotal.WithLabelValues("login").Inc()
			audit.LogFromRequest(r, audit.Event{Type: audit.EventRateLimitExceed})

			w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			httputil.WriteError(w, apperrors.RateLimitExceeded(msgTooManyLogins))
			return
		}

		next.ServeHTTP(w, r)
	})
}
