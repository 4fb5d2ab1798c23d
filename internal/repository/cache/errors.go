package cache

// ErrorHandler is an error that carries the HTTP status the delivery layer
// should answer with.
type ErrorHandler struct {
	Err        error
	StatusCode int
}

func NewErrorHandler(err error, status int) ErrorHandler {
	return ErrorHandler{Err: err, StatusCode: status}
}

func (e ErrorHandler) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e ErrorHandler) Unwrap() error { return e.Err }
