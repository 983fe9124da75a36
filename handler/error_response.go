package handler

import "net/http"

// errorResponse defers an error to the ErrorHandler configured on Wrap.
type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Fail returns a Response that writes nothing and hands err to the
// ErrorHandler. A nil err becomes ErrInternalServerError.
func Fail(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
