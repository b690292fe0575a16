package platform

import "errors"

// EnvelopeBody is the uniform JSON error shape returned for any failed
// request: {"error":{"code","message","statusCode","category"}}.
type EnvelopeBody struct {
	Error Detail `json:"error"`
}

// Detail mirrors a Descriptor inside the envelope.
type Detail struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	StatusCode int      `json:"statusCode"`
	Category   Category `json:"category"`
}

// unexpected is the envelope for failures that carry no recognized code.
// INTERNAL_UNEXPECTED_ERROR is a registered code, but the message here is the
// deliberately vague client-facing one, not the registry message.
var unexpected = Detail{
	Code:       "INTERNAL_UNEXPECTED_ERROR",
	Message:    "An unexpected error occurred",
	StatusCode: 500,
	Category:   CategoryInternal,
}

// Envelope converts any error into (HTTP status, response body). If err (or
// anything it wraps) is a platform Error with a registered code, the
// descriptor drives both; for everything else the fixed unexpected-error
// envelope is returned. Envelope never fails.
func Envelope(err error) (int, EnvelopeBody) {
	var pe *Error
	if errors.As(err, &pe) && IsKnown(pe.Code) {
		d := Lookup(pe.Code)
		return d.StatusCode, EnvelopeBody{Error: Detail{
			Code:       d.Code,
			Message:    d.Message,
			StatusCode: d.StatusCode,
			Category:   d.Category,
		}}
	}
	return unexpected.StatusCode, EnvelopeBody{Error: unexpected}
}
