package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPMetricsMiddleware instruments requests with Prometheus metrics. The
// route template is used as the path label so ids do not explode cardinality.
func HTTPMetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		path := c.Path()
		if path == "" {
			path = c.Request().URL.Path
		}
		ObserveHTTPRequest(c.Request().Method, path, strconv.Itoa(c.Response().Status), time.Since(start))
		return err
	}
}
