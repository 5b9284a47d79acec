package availability

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"fete/infras/otel"
	"fete/internal/domains/availability/model/dto"
	"fete/internal/domains/availability/service"
	"fete/shared/constant"
	"fete/shared/validator"
	"fete/transport/http/middleware"
	"fete/transport/http/response"
)

type Handler struct {
	service service.Availability
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Availability, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.CheckAvailability)
		routerGroup.Get("/schedule/{vendorId}", handler.GetSchedule)
		routerGroup.With(handler.auth.VendorAuth).Put("/schedule/{vendorId}", handler.UpsertSchedule)
	})
}

// CheckAvailability computes the open slots for a vendor on a date.
// @Summary Check vendor availability
// @Description Compute the bookable start times for a vendor on a date, along
// with the bookings already occupying slots. A vendor without a schedule or
// closed on that weekday is reported as unavailable, not as an error.
// @Tags Availability
// @Accept json
// @Produce json
// @Param vendor_id query string true "Vendor ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param service_id query string false "Service ID"
// @Param package_id query string false "Package ID"
// @Success 200 {object} response.Data[dto.CheckAvailabilityResponse] "Availability result"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	queryParams := r.URL.Query()

	req := dto.CheckAvailabilityRequest{
		VendorID:  queryParams.Get(constant.RequestParamVendor),
		Date:      queryParams.Get(constant.RequestParamDate),
		ServiceID: queryParams.Get(constant.RequestParamServiceID),
		PackageID: queryParams.Get(constant.RequestParamPackageID),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.Check(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability checked successfully for vendor " + req.VendorID)

	response.WithJSON(w, http.StatusOK, result)
}

// GetSchedule retrieves a vendor's weekly schedule.
// @Summary Get a vendor's weekly schedule
// @Description Retrieve the vendor's recurring working pattern: open days and
// the daily working window.
// @Tags Availability
// @Accept json
// @Produce json
// @Param vendorId path string true "Vendor ID"
// @Success 200 {object} response.Data[dto.ScheduleResponse] "Weekly schedule"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/schedule/{vendorId} [get]
func (handler *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedule")
	defer scope.End()

	vendorID := chi.URLParam(r, constant.RequestParamVendorID)

	schedule, err := handler.service.GetSchedule(ctx, vendorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Schedule retrieved successfully for vendor " + vendorID)

	response.WithJSON(w, http.StatusOK, schedule)
}

// UpsertSchedule creates or replaces a vendor's weekly schedule.
// @Summary Upsert a vendor's weekly schedule
// @Description Create or replace the vendor's whole weekly record: all seven
// day flags and the working window in one write.
// @Tags Availability
// @Accept json
// @Produce json
// @Param vendorId path string true "Vendor ID"
// @Param request body dto.UpsertScheduleRequest true "Upsert Schedule Request"
// @Success 200 {object} response.Message "Schedule saved successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/schedule/{vendorId} [put]
// @Security BearerAuth
func (handler *Handler) UpsertSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertSchedule")
	defer scope.End()

	vendorID := chi.URLParam(r, constant.RequestParamVendorID)

	req := dto.UpsertScheduleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpsertSchedule(ctx, vendorID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Schedule saved successfully for vendor " + vendorID)

	response.WithMessage(w, http.StatusOK, "Schedule saved successfully")
}
