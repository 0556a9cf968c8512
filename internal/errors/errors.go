package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for any bad username/password or
	// invalid token. Kept deliberately uniform so callers cannot probe
	// which part of the credential failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDisabled is returned when the user account is deactivated.
	ErrAccountDisabled = errors.New("account is disabled")
	// ErrForbidden is returned when the caller's role or capabilities are insufficient.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrAdminRequired is returned by admin-gated endpoints.
	ErrAdminRequired = errors.New("administrator privileges required")
	// ErrSuperAdminRequired is returned by super-admin-gated endpoints.
	ErrSuperAdminRequired = errors.New("super administrator privileges required")
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUsernameTaken is returned when creating a user with a duplicate handle.
	ErrUsernameTaken = errors.New("username already in use")
	// ErrSelfDelete is returned when a user tries to delete their own account.
	ErrSelfDelete = errors.New("cannot delete your own account")
	// ErrNoOverridableRow is returned when editing permissions of an admin-tier user.
	ErrNoOverridableRow = errors.New("admin-tier users have no editable permissions")
	// ErrWrongPassword is returned on a password change with a bad old password.
	ErrWrongPassword = errors.New("current password is incorrect")
	// ErrERPUnavailable is returned when the legacy ERP store cannot be reached.
	ErrERPUnavailable = errors.New("legacy ERP unavailable")
	// ErrERPRecordNotFound is returned when the legacy record id has no row.
	ErrERPRecordNotFound = errors.New("legacy ERP record not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrAccountDisabled):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ACCOUNT_DISABLED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrAdminRequired):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_REQUIRED")
	case errors.Is(err, ErrSuperAdminRequired):
		return NewHTTPError(http.StatusForbidden, err.Error(), "SUPER_ADMIN_REQUIRED")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrSelfDelete):
		return NewHTTPError(http.StatusConflict, err.Error(), "SELF_DELETE")
	case errors.Is(err, ErrNoOverridableRow):
		return NewHTTPError(http.StatusConflict, err.Error(), "NOT_OVERRIDABLE")
	case errors.Is(err, ErrWrongPassword):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "WRONG_PASSWORD")
	case errors.Is(err, ErrERPRecordNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ERP_RECORD_NOT_FOUND")
	case errors.Is(err, ErrERPUnavailable):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "ERP_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
