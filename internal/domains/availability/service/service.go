package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"fete/config"
	"fete/infras/otel"
	"fete/internal/domains/availability/model"
	"fete/internal/domains/availability/model/dto"
	"fete/internal/domains/availability/repository"
	bookingModel "fete/internal/domains/booking/model"
	bookingRepo "fete/internal/domains/booking/repository"
	"fete/shared"
	"fete/shared/cache"
	"fete/shared/constant"
	gDto "fete/shared/dto"
	"fete/shared/failure"
)

const defaultSlotStepMinutes = 60

type Availability interface {
	Check(ctx context.Context, req dto.CheckAvailabilityRequest) (dto.CheckAvailabilityResponse, error)
	GetSchedule(ctx context.Context, vendorID string) (dto.ScheduleResponse, error)
	UpsertSchedule(ctx context.Context, vendorID string, req dto.UpsertScheduleRequest) error
}

type serviceImpl struct {
	repo        repository.Schedule
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Schedule, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Check computes the bookable start times for a vendor on a date. A
// vendor without a schedule, or one closed on the date's weekday,
// yields an unavailable result instead of an error. The service and
// package references are accepted for future price-aware filtering and
// do not change the slot computation.
func (s *serviceImpl) Check(ctx context.Context, req dto.CheckAvailabilityRequest) (res dto.CheckAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = dto.CheckAvailabilityResponse{
		AvailableSlots:      []string{},
		ConflictingBookings: []dto.ConflictingBooking{},
	}

	cacheKey := shared.BuildCacheKey(constant.CachePrefixAvailabilityCheck, req.VendorID, req.Date, req.ServiceID, req.PackageID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability check")

		return res, nil
	}

	date, err := time.Parse(constant.DateOnlyFormat, req.Date)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	schedule, err := s.repo.Get(ctx, shared.FilterByID(req.VendorID, model.FieldVendorID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vendor schedule")

		return res, fmt.Errorf("failed to get vendor schedule: %w", err)
	}

	// No schedule on file: the vendor is closed on every date.
	if schedule.VendorID == constant.Empty {
		return res, nil
	}

	conflicts, err := s.conflictsFor(ctx, req.VendorID, req.Date)
	if err != nil {
		return res, err
	}

	res.ConflictingBookings = conflicts

	// Conflicts are still reported on closed days for transparency.
	if !schedule.OpenOn(date.Weekday()) {
		return res, nil
	}

	res.AvailableSlots = s.generateSlots(schedule, conflicts)
	res.Available = len(res.AvailableSlots) > 0

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability check to cache")
		}
	}()

	return res, nil
}

// conflictsFor lists the bookings occupying slots for the vendor on
// the date: pending and confirmed block, cancelled and completed do
// not. Ordered by start time ascending.
func (s *serviceImpl) conflictsFor(ctx context.Context, vendorID, date string) ([]dto.ConflictingBooking, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".conflictsFor")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldVendorID,
				Operator: gDto.FilterOperatorEq,
				Value:    vendorID,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldEventDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    bookingModel.BlockingStatuses(),
				Table:    bookingModel.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  bookingModel.FieldStartTime,
		SortDir: gDto.SortDirAsc,
	}

	bookings, err := s.bookingRepo.GetAll(ctx, params, filter, bookingModel.FieldID, bookingModel.FieldStartTime)
	if err != nil {
		log.Error().Err(err).Msg("failed to get conflicting bookings")

		return nil, fmt.Errorf("failed to get conflicting bookings: %w", err)
	}

	conflicts := make([]dto.ConflictingBooking, len(bookings))
	for i, booking := range bookings {
		conflicts[i] = dto.ConflictingBooking{
			ID:        booking.ID,
			StartTime: booking.StartTime.Format(constant.ClockFormat),
		}
	}

	return conflicts, nil
}

// generateSlots walks the daily window in fixed steps and offers every
// start time without a conflict at exactly that time. The walk stops
// strictly before the window's end; a slot whose duration would run
// past the end is still offered as long as its start precedes it.
func (s *serviceImpl) generateSlots(schedule model.WeeklySchedule, conflicts []dto.ConflictingBooking) []string {
	step := s.cfg.Booking.SlotStepMinutes
	if step <= 0 {
		step = defaultSlotStepMinutes
	}

	taken := make(map[string]struct{}, len(conflicts))
	for _, conflict := range conflicts {
		taken[conflict.StartTime] = struct{}{}
	}

	start := schedule.StartTime.Hour()*constant.MinutesPerHour + schedule.StartTime.Minute()
	end := schedule.EndTime.Hour()*constant.MinutesPerHour + schedule.EndTime.Minute()

	slots := []string{}

	for minute := start; minute < end; minute += step {
		slot := fmt.Sprintf("%02d:%02d", minute/60, minute%60)

		if _, occupied := taken[slot]; occupied {
			continue
		}

		slots = append(slots, slot)
	}

	return slots
}

func (s *serviceImpl) GetSchedule(ctx context.Context, vendorID string) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(constant.CachePrefixAvailabilitySchedule, vendorID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vendor schedule")

		return res, nil
	}

	schedule, err := s.repo.Get(ctx, shared.FilterByID(vendorID, model.FieldVendorID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vendor schedule")

		return res, fmt.Errorf("failed to get vendor schedule: %w", err)
	}

	if schedule.VendorID == constant.Empty {
		return res, failure.NotFound("schedule not found") // nolint:wrapcheck
	}

	res.FromModel(schedule)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vendor schedule to cache")
		}
	}()

	return res, nil
}

// UpsertSchedule replaces the vendor's whole weekly record: all seven
// day flags and the working window in one write.
func (s *serviceImpl) UpsertSchedule(ctx context.Context, vendorID string, req dto.UpsertScheduleRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyVendorID).(string)

	schedule, err := req.ToModel(vendorID, actor)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse schedule request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid time format: %v", err)) // nolint:wrapcheck
	}

	if !schedule.StartTime.Before(schedule.EndTime) {
		return failure.BadRequestFromString("start_time must precede end_time") // nolint:wrapcheck
	}

	if err = s.repo.Upsert(ctx, schedule); err != nil {
		log.Error().Err(err).Msg("failed to upsert vendor schedule")

		return fmt.Errorf("failed to upsert vendor schedule: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(constant.CachePrefixAvailabilitySchedule, vendorID)); err != nil {
			log.Error().Err(err).Msg("failed to delete vendor schedule from cache")
		}

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(constant.CachePrefixAvailabilityCheck, vendorID))
	}()

	return nil
}
