package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"fete/config"
	"fete/infras/kafka"
	"fete/infras/otel"
	"fete/internal/domains/booking/model"
	"fete/internal/domains/booking/model/dto"
	"fete/internal/domains/booking/repository"
	offeringModel "fete/internal/domains/offering/model"
	offeringRepo "fete/internal/domains/offering/repository"
	vendorModel "fete/internal/domains/vendors/model"
	vendorRepo "fete/internal/domains/vendors/repository"
	"fete/shared"
	"fete/shared/cache"
	"fete/shared/constant"
	gDto "fete/shared/dto"
	"fete/shared/failure"
	"fete/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, id string, next model.Status) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdatePaymentStatus(ctx context.Context, id string, next model.PaymentStatus) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	vendorRepo   vendorRepo.Vendor
	offeringRepo offeringRepo.Offering
	cfg          *config.Config
	cache        cache.RedisCache
	events       kafka.Client
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	vendorRepo vendorRepo.Vendor,
	offeringRepo offeringRepo.Offering,
	cfg *config.Config,
	cache cache.RedisCache,
	events kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		vendorRepo:   vendorRepo,
		offeringRepo: offeringRepo,
		cfg:          cfg,
		cache:        cache,
		events:       events,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyVendorID).(string)

	vendorExists, err := s.vendorRepo.Exist(ctx, shared.FilterByID(req.VendorID, vendorModel.FieldID, vendorModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if vendor exists")

		return res, fmt.Errorf("failed to check if vendor exists: %w", err)
	}

	if !vendorExists {
		return res, failure.NotFound("vendor not found") // nolint:wrapcheck
	}

	booking, err := req.ToModel(actor)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	offering, err := s.resolveOffering(ctx, booking)
	if err != nil {
		return res, err
	}

	booking.TotalPrice = offering.PriceCents
	booking.DepositAmount = offering.DepositCents

	if err = s.repo.Insert(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			log.Warn().
				Str("vendorID", booking.VendorID).
				Str("eventDate", req.EventDate).
				Str("startTime", req.StartTime).
				Msg("booking slot lost to a concurrent request")

			return res, failure.Conflict("the requested slot is no longer available") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	s.publishEvent(ctx, constant.KafkaTopicBookingCreated, booking.ID, map[string]any{
		"booking_id": booking.ID,
		"vendor_id":  booking.VendorID,
		"event_date": req.EventDate,
		"start_time": req.StartTime,
		"status":     booking.Status.String(),
	})

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(constant.CachePrefixAvailabilityCheck, booking.VendorID))
	}()

	return res, nil
}

// resolveOffering loads the referenced service or package and verifies
// it belongs to the booked vendor. The request DTO guarantees exactly
// one of the two references is set.
func (s *serviceImpl) resolveOffering(ctx context.Context, booking model.Booking) (offeringModel.Offering, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".resolveOffering")
	defer scope.End()

	offeringID := booking.ServiceID
	kind := offeringModel.KindService

	if offeringID == nil {
		offeringID = booking.PackageID
		kind = offeringModel.KindPackage
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    offeringModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    *offeringID,
				Table:    offeringModel.TableName,
			},
			gDto.Filter{
				Field:    offeringModel.FieldVendorID,
				Operator: gDto.FilterOperatorEq,
				Value:    booking.VendorID,
				Table:    offeringModel.TableName,
			},
			gDto.Filter{
				Field:    offeringModel.FieldKind,
				Operator: gDto.FilterOperatorEq,
				Value:    kind,
				Table:    offeringModel.TableName,
			},
		},
	}

	offering, err := s.offeringRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get offering")

		return offering, fmt.Errorf("failed to get offering: %w", err)
	}

	if offering.ID == constant.Empty {
		return offering, failure.NotFound(kind + " not found for vendor") // nolint:wrapcheck
	}

	return offering, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, next model.Status) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBookingStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if !booking.Status.CanTransitionTo(next) {
		return res, failure.UnprocessableEntity( // nolint:wrapcheck
			fmt.Sprintf("cannot transition booking from %s to %s", booking.Status, next),
		)
	}

	actor, _ := ctx.Value(constant.ContextKeyVendorID).(string)

	updatedFields := map[string]any{
		model.FieldStatus:        next.String(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	previous := booking.Status
	booking.Status = next
	booking.ModifiedAt = timezone.Now()
	booking.ModifiedBy = actor

	res.FromModel(booking)

	s.publishEvent(ctx, constant.KafkaTopicBookingStatusChanged, booking.ID, map[string]any{
		"booking_id": booking.ID,
		"vendor_id":  booking.VendorID,
		"from":       previous.String(),
		"to":         next.String(),
	})

	s.invalidateBookingCaches(ctx, booking)

	return res, nil
}

// Cancel retires a booking without deleting it, freeing its slot for
// new requests.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (dto.BookingResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()

	return s.UpdateStatus(ctx, id, model.StatusCancelled)
}

func (s *serviceImpl) UpdatePaymentStatus(ctx context.Context, id string, next model.PaymentStatus) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBookingPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if !booking.PaymentStatus.CanTransitionTo(next) {
		return res, failure.UnprocessableEntity( // nolint:wrapcheck
			fmt.Sprintf("cannot transition payment from %s to %s", booking.PaymentStatus, next),
		)
	}

	actor, _ := ctx.Value(constant.ContextKeyVendorID).(string)

	updatedFields := map[string]any{
		model.FieldPaymentStatus: next.String(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking payment status")

		return res, fmt.Errorf("failed to update booking payment status: %w", err)
	}

	previous := booking.PaymentStatus
	booking.PaymentStatus = next
	booking.ModifiedAt = timezone.Now()
	booking.ModifiedBy = actor

	res.FromModel(booking)

	s.publishEvent(ctx, constant.KafkaTopicBookingPaymentUpdated, booking.ID, map[string]any{
		"booking_id": booking.ID,
		"vendor_id":  booking.VendorID,
		"from":       previous.String(),
		"to":         next.String(),
	})

	s.invalidateBookingCaches(ctx, booking)

	return res, nil
}

// load fetches a booking by id, translating absence into a not-found
// failure.
func (s *serviceImpl) load(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, topic, key string, payload map[string]any) {
	go func() {
		c := context.WithoutCancel(ctx)
		_, scope := s.otel.NewScope(c, constant.OtelEventScopeName, constant.OtelEventScopeName+".publish")
		defer scope.End()

		if err := s.events.SendMessages(c, topic, kafka.Message{Key: key, Value: payload}); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("topic", topic).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(constant.CachePrefixAvailabilityCheck, booking.VendorID))
	}()
}
