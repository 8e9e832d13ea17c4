package tacksdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrVerificationRequired is returned by Login when the account has not
// confirmed its email yet. A new code has been mailed; finish with
// VerifyEmail.
var ErrVerificationRequired = errors.New("tacksdk: email verification required")

// APIError is a non-success envelope returned by the API.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []FieldError
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("tack api %d: %s (%s: %s)", e.StatusCode, e.Message, e.Errors[0].Path, e.Errors[0].Message)
	}
	return fmt.Sprintf("tack api %d: %s", e.StatusCode, e.Message)
}

// StatusOf returns the HTTP status carried by an *APIError in err's chain,
// or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// parseErrorResponse turns an error envelope into an *APIError, falling
// back to the status text when the body is not an envelope.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var env Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    env.Message,
			Errors:     env.Errors,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}
