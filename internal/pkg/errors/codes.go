package errors

import "net/http"

var (
	// ErrInvalidQuery is returned when day or activity is missing/invalid
	ErrInvalidQuery = New(
		"INVALID_QUERY",
		"Query must include a valid day (0-6) and activity",
		http.StatusBadRequest,
	)

	ErrStoreUnavailable = New(
		"STORE_UNAVAILABLE",
		"Venue store is temporarily unavailable",
		http.StatusServiceUnavailable,
	)

	ErrVenueNotFound = New(
		"VENUE_NOT_FOUND",
		"Venue not found",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
