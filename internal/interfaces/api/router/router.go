package router

import (
	"errors"
	"net/http"

	"silentblock/internal/application/dto"
	"silentblock/internal/interfaces/api/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Config holds the dependencies for the router.
type Config struct {
	BlockHandler *handler.BlockHandler
	Logger       zerolog.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = newHTTPErrorHandler(cfg.Logger)

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		MaxAge:       300,
	}))

	// Routes
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/blocks", cfg.BlockHandler.CreateBlock)
	e.GET("/blocks", cfg.BlockHandler.ListBlocks)

	return e
}

// newHTTPErrorHandler is the outermost safety net: unsupported methods get an
// empty 405, everything uncaught gets a generic 500 with the detail logged
// server-side only.
func newHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		}

		switch {
		case code == http.StatusMethodNotAllowed:
			_ = c.NoContent(http.StatusMethodNotAllowed)
		case code >= http.StatusInternalServerError:
			log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("unhandled error")
			_ = c.JSON(code, dto.ErrorResponse{
				Error:   "Internal server error",
				Message: "An unexpected error occurred",
			})
		default:
			_ = c.JSON(code, dto.ErrorResponse{
				Error:   http.StatusText(code),
				Message: http.StatusText(code),
			})
		}
	}
}
