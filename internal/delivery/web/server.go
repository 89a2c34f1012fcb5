// Package web is the storefront: a server-rendered echo application whose
// pages are backed by the external SocksFlow API.
package web

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"socksflow/config"
	"socksflow/internal/delivery"
	"socksflow/internal/delivery/middleware"
	webmiddleware "socksflow/internal/delivery/web/middleware"
	"socksflow/internal/delivery/web/router"
	"socksflow/internal/delivery/web/validator"
	"socksflow/internal/delivery/web/view"
	"socksflow/internal/domain/lifecycle"
	"socksflow/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type webServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the web server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	Renderer        *view.Renderer
	Sessions        *webmiddleware.SessionMiddleware
	Flash           *webmiddleware.FlashMiddleware
	NavigationGuard *webmiddleware.NavigationGuard
	Errors          *webmiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := New(params)

	srv := &webServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// New builds the echo instance with middleware and routes but does not start it.
func New(params ServerParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	echoServer.Pre(echomiddleware.RemoveTrailingSlash())

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	echoServer.Use(loggerMiddleware.Handle)

	// 4. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	// 5. Session and flash, needed by the guard and every page
	echoServer.Use(params.Sessions.Load)
	echoServer.Use(params.Flash.Handle)

	// 6. Navigation guard, also for unknown paths under a protected prefix
	echoServer.Use(params.NavigationGuard.Handle)

	// Set up centralized error handler
	echoServer.HTTPErrorHandler = params.Errors.HandleHTTPError

	echoServer.Renderer = params.Renderer
	echoServer.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	return echoServer
}

func (s *webServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting web server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *webServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down web server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
