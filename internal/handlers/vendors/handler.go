package vendors

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"fete/infras/otel"
	"fete/internal/domains/vendors/service"
	"fete/shared/constant"
	"fete/transport/http/response"
)

type Handler struct {
	service service.Vendor
	otel    otel.Otel
}

func New(service service.Vendor, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/vendors", func(routerGroup chi.Router) {
		routerGroup.Get("/{id}", handler.GetVendorByID)
	})
}

// GetVendorByID retrieves a vendor's profile by its ID.
// @Summary Get a vendor by ID
// @Description Retrieve a vendor's public profile by its unique identifier.
// @Tags Vendor
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} response.Data[dto.VendorResponse] "Vendor profile"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vendors/{id} [get]
func (handler *Handler) GetVendorByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVendorByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	vendor, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vendor by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vendor retrieved successfully")

	response.WithJSON(w, http.StatusOK, vendor)
}
