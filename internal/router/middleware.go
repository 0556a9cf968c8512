package router

import (
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"textilerp/internal/auth"
	apperrors "textilerp/internal/errors"
	"textilerp/internal/handler"
	"textilerp/internal/service"
)

func httpError(err error) *echo.HTTPError {
	mapped := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
}

// currentUser runs after the JWT middleware. It rejects blacklisted tokens,
// loads the user behind the subject claim and stashes both on the context.
func currentUser(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return httpError(apperrors.ErrInvalidCredentials)
			}
			user, err := authService.ResolveToken(c.Request().Context(), token.Raw)
			if err != nil {
				return httpError(err)
			}
			c.Set(handler.ContextUserKey, user)
			c.Set(handler.ContextTokenKey, token.Raw)
			return next(c)
		}
	}
}

// requireAdmin admits only admin-tier callers.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := handler.CurrentUser(c)
		if user == nil || !user.Role.AdminTier() {
			return httpError(apperrors.ErrAdminRequired)
		}
		return next(c)
	}
}

// requireCapability gates a route on one resolved capability flag.
func requireCapability(perms service.PermissionService, allowed func(auth.CapabilitySet) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := handler.CurrentUser(c)
			if user == nil {
				return httpError(apperrors.ErrInvalidCredentials)
			}
			caps, err := perms.Effective(c.Request().Context(), user)
			if err != nil {
				return httpError(err)
			}
			if !allowed(caps) {
				return httpError(apperrors.ErrForbidden)
			}
			return next(c)
		}
	}
}

// fileCapability resolves the flag guarding a file route. Known kinds map to
// their dedicated flag; anything else requires holding the flag for at least
// one kind.
func fileCapability(caps auth.CapabilitySet, kind string, upload bool) bool {
	if upload {
		switch kind {
		case "patterns":
			return caps.UploadPatterns
		case "gradings":
			return caps.UploadGradings
		case "sheets":
			return caps.UploadSheets
		case "images":
			return caps.UploadImages
		case "costs":
			return caps.UploadCosts
		}
		return caps.UploadPatterns || caps.UploadGradings || caps.UploadSheets ||
			caps.UploadImages || caps.UploadCosts
	}
	switch kind {
	case "patterns":
		return caps.DownloadPatterns
	case "gradings":
		return caps.DownloadGradings
	case "sheets":
		return caps.DownloadSheets
	case "images":
		return caps.DownloadImages
	case "costs":
		return caps.DownloadCosts
	}
	return caps.DownloadPatterns || caps.DownloadGradings || caps.DownloadSheets ||
		caps.DownloadImages || caps.DownloadCosts
}

// requireFileCapability gates a file route. The kind comes from the "type"
// query parameter, or from the "category" form field on uploads.
func requireFileCapability(perms service.PermissionService, upload bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := handler.CurrentUser(c)
			if user == nil {
				return httpError(apperrors.ErrInvalidCredentials)
			}
			caps, err := perms.Effective(c.Request().Context(), user)
			if err != nil {
				return httpError(err)
			}
			kind := c.QueryParam("type")
			if kind == "" && upload {
				kind = c.FormValue("category")
			}
			if !fileCapability(caps, kind, upload) {
				return httpError(apperrors.ErrForbidden)
			}
			return next(c)
		}
	}
}
