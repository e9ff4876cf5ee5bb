package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// AccessLogMiddleware logs one line per request and tags it with a
// request id, generating one when the client did not send X-Request-ID.
type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
			c.Set("X-Request-ID", rid)
		}

		err := c.Next()

		m.logger.Printf(
			"HTTP %s %s | rid=%s ip=%s status=%d latency=%s resp_bytes=%d ua=%q",
			c.Method(), c.OriginalURL(), rid, c.IP(),
			c.Response().StatusCode(), time.Since(start),
			c.Response().Header.ContentLength(), c.Get("User-Agent"),
		)

		return err
	}
}
