package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"textilerp/internal/audit"
	apperrors "textilerp/internal/errors"
	"textilerp/internal/model"
)

// ContextUserKey is where the current-user middleware stores the caller.
const ContextUserKey = "current_user"

// ContextTokenKey is where the raw bearer token is stored for logout.
const ContextTokenKey = "session_token"

// CurrentUser returns the authenticated caller, or nil on public routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextUserKey).(*model.User)
	return user
}

// actorFrom builds the audit actor for the current request.
func actorFrom(c echo.Context) audit.Actor {
	return audit.ActorFromUser(CurrentUser(c), c.RealIP(), c.Request().UserAgent())
}

// respondError maps a domain error onto the standard error envelope.
func respondError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint, error) {
	return pathUint(c, "id")
}

func pathUint(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(400, "invalid "+name)
	}
	return uint(id), nil
}
