// Package echoapi exposes the assignment tracker over HTTP/1.1 with JSON
// bodies. Authentication is stateless: every gated request carries a Bearer
// token and no session state is kept server-side.
package echoapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"

	"github.com/mwenda/classtrack/core"
	"github.com/mwenda/classtrack/core/assignment"
	"github.com/mwenda/classtrack/core/user"
)

type (
	Options struct {
		Conf          *core.Config
		Logger        *zap.Logger
		UserSvc       *user.Service
		AssignmentSvc *assignment.Service

		DisableReqLogs   bool // tests
		DisableRateLimit bool // tests
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.opts.Conf
	validate, translator := core.NewValidator()

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in debug mode
	if !conf.Debug {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	// all origins, methods and headers permitted
	s.app.Use(middleware.CORS())

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, translator)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	usrAPI := &userAPI{svc: s.opts.UserSvc, conf: conf, validate: validate}
	authed := []echo.MiddlewareFunc{}
	if !s.opts.DisableRateLimit {
		authed = append(authed, authRateLimiter())
	}
	s.app.POST("/signup", usrAPI.signup, authed...)
	s.app.POST("/login", usrAPI.login, authed...)

	asgAPI := &assignmentAPI{svc: s.opts.AssignmentSvc, validate: validate}
	ag := s.app.Group("/assignments", newJWTMiddleware(conf))
	ag.POST("", asgAPI.create, roleMiddleware(user.RoleTeacher))
	ag.GET("", asgAPI.list)
	ag.POST("/:id/submit", asgAPI.submit, roleMiddleware(user.RoleStudent))
	ag.GET("/:id/submissions", asgAPI.listSubmissions, roleMiddleware(user.RoleTeacher))
}

func (s *server) Start() error {
	return s.app.Start(s.opts.Conf.Address)
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"message": "API is working!"})
}
