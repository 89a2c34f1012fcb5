package middleware

import (
	"log/slog"
	"net/http"

	"socksflow/config"
	"socksflow/internal/domain/constants"
	"socksflow/internal/domain/service"
	"socksflow/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	keyFlash       = "flash"
	keyFlashWriter = "flash_writer"
)

// FlashMiddleware moves one-shot state across a POST/redirect/GET round-trip in a
// signed cookie. The cookie is consumed on the next request.
type FlashMiddleware struct {
	codec  service.FlashCodec
	secure bool
	maxAge int
	logger *slog.Logger
}

// NewFlashMiddleware creates a new flash middleware
func NewFlashMiddleware(codec service.FlashCodec, cfg *config.Config, logger *slog.Logger) *FlashMiddleware {
	return &FlashMiddleware{
		codec:  codec,
		secure: cfg.Session.Secure,
		maxAge: int(cfg.Session.FlashTTL.Seconds()),
		logger: logger,
	}
}

// Handle decodes and clears the incoming flash. Invalid or expired cookies are dropped silently.
func (m *FlashMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(keyFlashWriter, m)

		if cookie, err := c.Cookie(constants.CookieFlash); err == nil && cookie.Value != "" {
			flash, err := m.codec.Decode(cookie.Value)
			if err != nil {
				m.logger.Debug("Dropping unreadable flash cookie", slog.Any("error", err))
			} else {
				c.Set(keyFlash, flash)
			}
			m.clear(c)
		}

		return next(c)
	}
}

func (m *FlashMiddleware) write(c echo.Context, flash *service.Flash) error {
	value, err := m.codec.Encode(flash)
	if err != nil {
		return errors.Wrap(err, "failed to encode flash")
	}

	c.SetCookie(&http.Cookie{
		Name:     constants.CookieFlash,
		Value:    value,
		Path:     "/",
		MaxAge:   m.maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (m *FlashMiddleware) clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     constants.CookieFlash,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetFlash returns the flash carried by this request, or nil.
func GetFlash(c echo.Context) *service.Flash {
	flash, _ := c.Get(keyFlash).(*service.Flash)

	return flash
}

// SetFlash stores flash for the next request.
func SetFlash(c echo.Context, flash *service.Flash) error {
	m, ok := c.Get(keyFlashWriter).(*FlashMiddleware)
	if !ok {
		return errors.New("flash middleware not installed")
	}

	return m.write(c, flash)
}
