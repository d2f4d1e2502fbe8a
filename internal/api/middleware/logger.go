// Package middleware provides the middleware for the Echo instance
package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupLoggerMiddleware configures and adds middleware to the Echo instance
func SetupLoggerMiddleware(e *echo.Echo) {
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339}: req=${method} ${uri}, status=${status}, ip=${remote_ip}, latency=${latency_human}, bytes_out=${bytes_out}, error=${error}\n",
	}))
	e.Use(middleware.Recover())
}
