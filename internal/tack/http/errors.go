package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/service"
	"github.com/aussiebroadwan/tack/pkg/httpx"
	"github.com/aussiebroadwan/tack/pkg/slogx"
)

var statusByKind = map[domain.Kind]int{
	domain.KindBadRequest:    http.StatusBadRequest,
	domain.KindUnauthorized:  http.StatusUnauthorized,
	domain.KindForbidden:     http.StatusForbidden,
	domain.KindNotFound:      http.StatusNotFound,
	domain.KindConflict:      http.StatusConflict,
	domain.KindUnprocessable: http.StatusUnprocessableEntity,
}

const (
	msgInternal      = "Internal server error."
	msgInvalidJSON   = "Invalid JSON body."
	msgValidation    = "Validation failed."
	msgAuthRequired  = "Authentication required."
	msgRouteNotFound = "Route not found."
)

// writeError maps err onto the envelope. Anything that is not a
// *domain.Error is logged and reported as a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		code, ok := statusByKind[de.Kind]
		if !ok {
			code = http.StatusInternalServerError
		}
		httpx.WriteError(w, code, de.Message, fieldErrors(de.Fields))
		return
	}

	slogx.FromContext(r.Context()).Error("request failed",
		"err", err,
		"method", r.Method,
		"path", r.URL.Path,
	)
	httpx.WriteError(w, http.StatusInternalServerError, msgInternal, nil)
}

func fieldErrors(in []domain.FieldError) []httpx.FieldError {
	if len(in) == 0 {
		return nil
	}
	out := make([]httpx.FieldError, len(in))
	for i, f := range in {
		out[i] = httpx.FieldError{Path: f.Path, Message: f.Message}
	}
	return out
}

// authFailure answers requests rejected by the authn middleware with the
// same messages the token service uses.
func authFailure(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, httpx.ErrMissingToken) {
		httpx.WriteError(w, http.StatusUnauthorized, msgAuthRequired, nil)
		return
	}
	writeError(w, r, service.TokenError(err))
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	httpx.WriteError(w, http.StatusNotFound, msgRouteNotFound, nil)
}
