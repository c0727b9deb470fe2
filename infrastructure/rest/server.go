// Package rest exposes the synchronous command layer: join, leave, end,
// cancel, status, history and the topic catalog, plus the dev token mint
// and the websocket upgrade endpoint.
package rest

import (
	"context"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"pairup/auth"
	"pairup/infrastructure/ws"
)

type Server struct {
	echo *echo.Echo
	addr string
	log  *slog.Logger
}

func NewServer(log *slog.Logger, addr string, tokens *auth.TokenService,
	handlers *Handlers, wsHandler *ws.Handler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	e.GET("/health", handlers.Health)
	e.POST("/auth/token", handlers.MintToken)
	// The websocket endpoint does its own bearer check: browser clients
	// cannot set headers on the upgrade request.
	e.GET("/ws", wsHandler.Serve)

	api := e.Group("/api")
	api.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: tokens.Secret(),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.CustomClaims)
		},
	}))
	api.GET("/topics", handlers.ListTopics)
	api.POST("/topics", handlers.PutTopic)
	api.POST("/match/join", handlers.Join)
	api.DELETE("/match", handlers.Leave)
	api.GET("/status", handlers.Status)
	api.GET("/history", handlers.History)
	api.POST("/sessions/:id/end", handlers.End)
	api.POST("/sessions/:id/cancel", handlers.Cancel)

	return &Server{
		echo: e,
		addr: addr,
		log:  log.With(slog.String("component", "rest")),
	}
}

// Start blocks until shutdown.
func (s *Server) Start() error {
	return s.echo.Start(s.addr)
}

func (s *Server) Stop(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
