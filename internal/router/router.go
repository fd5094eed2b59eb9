package router

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	"contacts/internal/config"
	"contacts/internal/errors"
	"contacts/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	contactHandler *handler.ContactHandler,
	healthHandler *handler.HealthHandler,
) {
	e.HTTPErrorHandler = ProblemErrorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Error().
				Str("request_id", requestID(c)).
				Err(err).
				Bytes("stack", stack).
				Msg("panic recovered")
			return err
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
	}))

	e.GET("/healthz", healthHandler.Healthz)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/contacts", contactHandler.ListContacts)
	api.POST("/contacts", contactHandler.CreateContact)
	api.GET("/contacts/:id", contactHandler.GetContact)
	api.PUT("/contacts/:id", contactHandler.UpdateContact)
	api.DELETE("/contacts/:id", contactHandler.DeleteContact)
}

// ProblemErrorHandler renders every error as a problem body. Domain errors
// go through errors.MapErrorToHTTP; echo's own errors keep their status.
func ProblemErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *errors.HTTPError
	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		httpErr = errors.NewHTTPError(echoErr.Code, http.StatusText(echoErr.Code), echoMessage(echoErr))
	} else {
		httpErr = errors.MapErrorToHTTP(err)
	}

	if httpErr.StatusCode >= http.StatusInternalServerError {
		log.Error().
			Str("request_id", requestID(c)).
			Str("method", c.Request().Method).
			Str("uri", c.Request().RequestURI).
			Err(err).
			Msg("request failed")
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.StatusCode)
		return
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/problem+json")
	if werr := c.JSON(httpErr.StatusCode, httpErr.ToProblem(requestID(c))); werr != nil {
		log.Error().Err(werr).Msg("write problem response")
	}
}

func echoMessage(he *echo.HTTPError) string {
	if he.Code >= http.StatusInternalServerError {
		return "An unexpected error occurred."
	}
	if msg, ok := he.Message.(string); ok {
		return msg
	}
	return fmt.Sprint(he.Message)
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		// Errors are logged by ProblemErrorHandler; the status here is final.
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Status >= http.StatusInternalServerError {
				event = log.Warn()
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("ip", v.RemoteIP).
				Msg("HTTP request")
			return nil
		},
	})
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
