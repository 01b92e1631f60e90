package http

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/obs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
)

const principalKey = "principal"

// authenticate resolves the bearer token into a principal for the route.
func (s *Server) authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return s.fail(c, errs.NewUnauthenticatedError("missing bearer token"))
			}

			principal, err := s.identity.ResolveToken(c.Request().Context(), strings.TrimSpace(token))
			if err != nil {
				return s.fail(c, err)
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

func principalFrom(c echo.Context) (auth.Principal, error) {
	principal, ok := c.Get(principalKey).(auth.Principal)
	if !ok {
		return auth.Principal{}, errs.NewUnauthenticatedError("no principal on request")
	}
	return principal, nil
}

// instrument records request counts and latency per route template.
func (s *Server) instrument() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			status := strconv.Itoa(c.Response().Status)
			s.metrics.Requests.WithLabelValues(route, c.Request().Method, status).Inc()
			s.metrics.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
			return nil
		}
	}
}

// tracing opens a server span per request, continuing an incoming W3C trace.
func (s *Server) tracing() echo.MiddlewareFunc {
	tracer := obs.Tracer("lockers/http")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := otel.GetTextMapPropagator().Extract(req.Context(), propagation.HeaderCarrier(req.Header))
			ctx, span := tracer.Start(ctx, req.Method+" "+c.Path())
			defer span.End()

			c.SetRequest(req.WithContext(ctx))
			err := next(c)

			span.SetAttributes(
				attribute.String("http.method", req.Method),
				attribute.String("http.route", c.Path()),
				attribute.Int("http.status_code", c.Response().Status),
			)
			if err != nil {
				span.SetStatus(codes.Error, err.Error())
			} else if c.Response().Status >= 500 {
				span.SetStatus(codes.Error, "server error")
			}
			return err
		}
	}
}

// requestLogger writes one structured line per request.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"path", v.URIPath,
				"route", v.RoutePath,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
			}
			if v.Error != nil {
				s.logger.LogAttrs(c.Request().Context(), slog.LevelWarn, "request", slog.Group("http", attrs...),
					slog.String("error", v.Error.Error()))
				return nil
			}
			s.logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", slog.Group("http", attrs...))
			return nil
		},
	})
}

func lockerIDParam(c echo.Context) (kernel.ID, error) {
	id, err := kernel.IDFromString(c.Param("id"))
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("locker id", err)
	}
	return id, nil
}

func uuidParam(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
