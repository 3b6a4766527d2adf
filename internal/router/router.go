// Package router wires the HTTP surface: middleware chain, public auth
// routes and the authenticated portal and admin groups.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/altamar/portal/internal/auth"
	"github.com/altamar/portal/internal/handler"
	"github.com/altamar/portal/internal/handler/admin"
	"github.com/altamar/portal/internal/handler/portal"
	"github.com/altamar/portal/internal/middleware"
)

// Deps are the wired dependencies the router mounts.
type Deps struct {
	Logger  zerolog.Logger
	Metrics *middleware.Metrics
	Tokens  *auth.TokenIssuer
	Auth    *handler.AuthHandler
	Admin   *admin.Handler
	Portal  *portal.Handler
}

// New builds the echo instance with all routes mounted.
func New(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()

	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(deps.Metrics.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	deps.Auth.Register(api.Group("/auth"))

	portalGroup := api.Group("/portal",
		middleware.Authenticate(deps.Tokens),
		middleware.RequireCustomer(),
	)
	deps.Portal.Register(portalGroup)

	adminGroup := api.Group("/admin",
		middleware.Authenticate(deps.Tokens),
		middleware.RequireAdmin(),
	)
	deps.Admin.Register(adminGroup)

	return e
}
