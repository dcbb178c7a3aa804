package google

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

// Common Google API errors.
var (
	// ErrUnauthorized indicates invalid or expired credentials.
	ErrUnauthorized = errors.New("google: unauthorised (invalid credentials)")

	// ErrForbidden indicates insufficient permissions.
	// For Sheets this usually means the spreadsheet is not shared with the service account.
	ErrForbidden = errors.New("google: forbidden (insufficient permissions)")

	// ErrNotFound indicates the spreadsheet or range was not found.
	ErrNotFound = errors.New("google: resource not found")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("google: rate limit exceeded")

	// ErrBadRequest indicates a malformed request, typically an invalid A1 range.
	ErrBadRequest = errors.New("google: bad request")
)

// statusErrors maps the HTTP statuses Sheets reports to sentinels.
var statusErrors = map[int]error{
	http.StatusBadRequest:      ErrBadRequest,
	http.StatusUnauthorized:    ErrUnauthorized,
	http.StatusForbidden:       ErrForbidden,
	http.StatusNotFound:        ErrNotFound,
	http.StatusTooManyRequests: ErrRateLimited,
}

// IsUnauthorized reports whether err means the credentials were rejected.
func IsUnauthorized(err error) bool { return is(err, http.StatusUnauthorized) }

// IsForbidden reports whether err means the spreadsheet is not shared.
func IsForbidden(err error) bool { return is(err, http.StatusForbidden) }

// IsNotFound reports whether err means the spreadsheet or range is missing.
func IsNotFound(err error) bool { return is(err, http.StatusNotFound) }

// IsRateLimited reports whether err means the quota was hit.
func IsRateLimited(err error) bool { return is(err, http.StatusTooManyRequests) }

func is(err error, status int) bool {
	if errors.Is(err, statusErrors[status]) {
		return true
	}
	return apiStatus(err) == status
}

// apiStatus returns the HTTP status of a *googleapi.Error in err's chain, or 0.
func apiStatus(err error) int {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return 0
}

// WrapError joins err with the sentinel for its HTTP status, if any.
// The original error stays reachable through errors.Is/As.
func WrapError(err error) error {
	if err == nil {
		return nil
	}
	if sentinel, ok := statusErrors[apiStatus(err)]; ok {
		return errors.Join(sentinel, err)
	}
	return err
}
