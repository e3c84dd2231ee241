package http

import (
	"flight-concierge/internal/user"
	pkgErrors "flight-concierge/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors become an opaque 500 so store details never leak.
func (h *handler) mapError(err error) error {
	switch err {
	case user.ErrEmailTaken:
		return pkgErrors.NewHTTPError(409, "email already registered")
	case user.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(401, "invalid email or password")
	case user.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
