package http

import (
	"flight-concierge/internal/chat"
	pkgErrors "flight-concierge/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors become an opaque 500 so store details never leak.
func (h *handler) mapError(err error) error {
	switch err {
	case chat.ErrSessionNotFound:
		return pkgErrors.NewHTTPError(404, "session not found")
	case chat.ErrSessionForbidden:
		return pkgErrors.NewHTTPError(403, "session belongs to another user")
	case chat.ErrEmptyMessage:
		return pkgErrors.NewHTTPError(400, "message content is required")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
