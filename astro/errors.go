package astro

import (
	"net/http"

	"github.com/ansel1/merry"
)

// Computation errors are deterministic: the same input always fails the
// same way, so callers should never retry.
var (
	ErrInvalidCalendarField = merry.New("invalid calendar field").WithHTTPCode(http.StatusBadRequest)
	ErrOffsetOutOfRange     = merry.New("utc offset out of range").WithHTTPCode(http.StatusBadRequest)
	ErrUnsupportedTimeSpan  = merry.New("date outside supported time span").WithHTTPCode(http.StatusUnprocessableEntity)
)
