// Package middleware contains the echo middleware shared by every server.
package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "socksflow/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags every request with an ID and a logger carrying it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process stores the ID on both the echo context (templates, JSON meta) and the
// request context (services, journey events) and echoes it in the response.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		id := requestID(req)

		deliverycontext.SetRequestID(c, id)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)

		ctx := deliverycontext.WithRequestID(req.Context(), id)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(
			slog.String("request_id", id),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
		))
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// requestID reuses a well-formed inbound ID from a proxy, otherwise mints one.
func requestID(req *http.Request) string {
	if id := req.Header.Get(deliverycontext.HeaderXRequestID); deliverycontext.ValidRequestID(id) {
		return id
	}

	return uuid.New().String()
}
