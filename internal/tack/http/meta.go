package http

import (
	"net/http"

	"github.com/aussiebroadwan/tack/internal/tack/service"
	"github.com/aussiebroadwan/tack/pkg/httpx"
)

type MetaHandler struct {
	Meta service.MetaService
}

// ServeHTTP godoc
//
//	@Summary		Enumerations
//	@Description	Roles, card statuses, card priorities and board visibilities as label/value pairs.
//	@Tags			Meta
//	@Produce		json
//	@Success		200	{object}	tacksdk.Envelope{data=tacksdk.Enumerations}	"Enumerations"
//	@Router			/api/meta [get].
func (h *MetaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteData(w, http.StatusOK, "Metadata fetched successfully.", h.Meta.Enumerations())
}
