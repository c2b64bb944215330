package catalog

import "fmt"

// APIError is a non-success response from the catalog backend. Code is
// the backend's machine-readable error code when supplied.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("catalog: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("catalog: %s (status %d)", e.Message, e.Status)
}

// IsNotFound reports whether err is a catalog 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == 404
}

// IsUnauthorized reports whether err means the seller token was rejected
// by the backend (expired or revoked).
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && (apiErr.Status == 401 || apiErr.Status == 403)
}
