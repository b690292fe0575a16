package platform

import "fmt"

// Error tags a failure with a platform error code so the HTTP layer can emit
// the structured envelope for it. The wrapped cause is kept for logs only and
// never reaches the response body.
type Error struct {
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return Lookup(e.Code).Message
}

func (e *Error) Unwrap() error { return e.Err }

// Coded returns an Error carrying the given code.
func Coded(code string) *Error { return &Error{Code: code} }

// Wrap returns an Error carrying the given code and cause.
func Wrap(code string, err error) *Error { return &Error{Code: code, Err: err} }
