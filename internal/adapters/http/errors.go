package httpadapter

var (
	ErrBadRequest = newError("Body invalid")
	ErrNotFound   = newError("Resource not found")
)

// HTTPError is the JSON error body for API failures.
type HTTPError struct {
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

func newError(msg string) *HTTPError {
	return &HTTPError{Message: msg}
}
