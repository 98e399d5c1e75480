package api

import (
	"errors"
	"net/http"
	"os"

	"github.com/phrazzld/scry-deck/internal/deck"
	"github.com/phrazzld/scry-deck/internal/itemtype"
	"github.com/phrazzld/scry-deck/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, os.ErrNotExist):
		return http.StatusNotFound

	// The deck file (or an item's content) is malformed
	case errors.Is(err, deck.ErrParse),
		errors.Is(err, deck.ErrInvalidMetadataFormat),
		errors.Is(err, deck.ErrInvalidFieldValue),
		errors.Is(err, itemtype.ErrContentParse),
		errors.Is(err, itemtype.ErrNoMatchingType):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrItemNotFound):
		return "Item not found"

	case errors.Is(err, os.ErrNotExist):
		return "Deck file not found"

	case errors.Is(err, deck.ErrParse),
		errors.Is(err, deck.ErrInvalidMetadataFormat),
		errors.Is(err, deck.ErrInvalidFieldValue):
		return "Deck file is malformed"

	case errors.Is(err, itemtype.ErrContentParse),
		errors.Is(err, itemtype.ErrNoMatchingType):
		return "Item content matches no registered card type"

	default:
		return "An unexpected error occurred"
	}
}
