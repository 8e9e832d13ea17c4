package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/pkg/httpx"
	"github.com/aussiebroadwan/tack/pkg/idx"
	"github.com/aussiebroadwan/tack/pkg/validatex"
)

const maxBodyBytes = 1 << 20

// decode reads a JSON body into dst and validates it. On failure the
// response has been written and decode returns false.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgInvalidJSON, nil)
		return false
	}

	if errs := validatex.Struct(dst); len(errs) > 0 {
		fields := make([]httpx.FieldError, len(errs))
		for i, e := range errs {
			fields[i] = httpx.FieldError{Path: e.Path, Message: e.Message}
		}
		httpx.WriteError(w, http.StatusUnprocessableEntity, msgValidation, fields)
		return false
	}
	return true
}

// pathIDs reads the named path values, answering 422 if any is not a
// valid id.
func pathIDs(w http.ResponseWriter, r *http.Request, names ...string) ([]string, bool) {
	ids := make([]string, len(names))
	var fields []httpx.FieldError
	for i, name := range names {
		ids[i] = r.PathValue(name)
		if !idx.Valid(ids[i]) {
			fields = append(fields, httpx.FieldError{Path: name, Message: "must be a valid id"})
		}
	}
	if len(fields) > 0 {
		httpx.WriteError(w, http.StatusUnprocessableEntity, msgValidation, fields)
		return nil, false
	}
	return ids, true
}

// actor is the authenticated caller. Handlers behind AuthnMiddleware always
// have one. Only the subject is taken from the token; roles are resolved
// from the store.
func actor(r *http.Request) domain.Actor {
	claims, _ := httpx.ClaimsFromContext(r.Context())
	return domain.Actor{UserID: claims.Subject}
}
