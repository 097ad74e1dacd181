package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := BuildInfo{
		Version:     "development",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
	}
	if version := os.Getenv("APP_VERSION"); version != "" {
		buildInfo.Version = version
	}

	return func(c echo.Context) error {
		buildInfo.Hostname = hostname
		buildInfo.ServerTime = time.Now()

		return c.JSON(http.StatusOK, buildInfo)
	}
}

// RegisterHealthEndpoints registers liveness and readiness endpoints.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	e.GET("/health", NewPingHandler(serviceName))
	e.GET("/health/live", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}
