package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dentsched/config"
	"dentsched/infras/kafka"
	"dentsched/infras/otel"
	"dentsched/infras/redis"
	"dentsched/internal/domains/booking/model"
	"dentsched/internal/domains/booking/model/dto"
	"dentsched/internal/domains/booking/repository"
	procedureModel "dentsched/internal/domains/procedure/model"
	procedureRepo "dentsched/internal/domains/procedure/repository"
	"dentsched/shared"
	"dentsched/shared/cache"
	"dentsched/shared/clock"
	"dentsched/shared/constant"
	"dentsched/shared/failure"
	"dentsched/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking = "booking:get"
	cacheReminder   = "booking:reminder"
	lockPrefix      = "booking"

	errCancelled   = "booking is cancelled"
	errNoShow      = "booking was marked as no-show"
	errLockBusy    = "practitioner calendar is busy, try again"
	errStartInPast = "booking must start in the future"
	errServiceTime = "procedure has no service time"
)

type Booking interface {
	Create(ctx context.Context, tenantID string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, tenantID, id string) (dto.BookingResponse, error)
	DayAgenda(ctx context.Context, tenantID, practitionerID string, date clock.Date) (dto.DayAgendaResponse, error)
	Confirm(ctx context.Context, tenantID, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, tenantID, id string) (dto.BookingResponse, error)
	Reschedule(ctx context.Context, tenantID, id string, req dto.RescheduleRequest) (dto.BookingResponse, error)
	MarkNoShow(ctx context.Context, tenantID, id string) (dto.BookingResponse, error)
	CreateFollowUp(ctx context.Context, tenantID, originID string, req dto.FollowUpRequest) (dto.BookingResponse, error)
	SendReminders(ctx context.Context, now time.Time) (int, error)
}

type serviceImpl struct {
	repo       repository.Booking
	procedures procedureRepo.Procedure
	locker     redis.Locker
	kafka      kafka.Client
	cache      cache.RedisCache
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	procedures procedureRepo.Procedure,
	locker redis.Locker,
	kafka kafka.Client,
	cache cache.RedisCache,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		procedures: procedures,
		locker:     locker,
		kafka:      kafka,
		cache:      cache,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, tenantID string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.newBooking(ctx, tenantID, req)
	if err != nil {
		return res, err
	}

	if err = s.reserve(ctx, booking); err != nil {
		return res, err
	}

	s.publish(ctx, model.EventCreated, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, tenantID, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, tenantID, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.find(ctx, tenantID, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save booking to cache")
	}

	return res, nil
}

func (s *serviceImpl) DayAgenda(ctx context.Context, tenantID, practitionerID string, date clock.Date) (res dto.DayAgendaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.DayAgenda")
	defer scope.End()
	defer scope.TraceIfError(&err)

	bookings, err := s.repo.ListAgenda(ctx, tenantID, practitionerID, date.In(timezone.GetLocation()))
	if err != nil {
		log.Error().Err(err).Msg("failed to list agenda")

		return res, fmt.Errorf("failed to list agenda: %w", err)
	}

	res.FromModels(date, bookings)

	return res, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, tenantID, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Confirm")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.transition(ctx, tenantID, id, model.StatusConfirmed, model.EventConfirmed, func(current model.Status) error {
		switch current {
		case model.StatusCancelled:
			return failure.Conflict(errCancelled) // nolint:wrapcheck
		case model.StatusNoShow:
			return failure.Conflict(errNoShow) // nolint:wrapcheck
		default:
			return nil
		}
	})
}

// Cancel releases the booking's time range. Cancelling twice is a no-op.
func (s *serviceImpl) Cancel(ctx context.Context, tenantID, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.transition(ctx, tenantID, id, model.StatusCancelled, model.EventCancelled, func(model.Status) error {
		return nil
	})
}

func (s *serviceImpl) MarkNoShow(ctx context.Context, tenantID, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.MarkNoShow")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.transition(ctx, tenantID, id, model.StatusNoShow, model.EventNoShow, func(current model.Status) error {
		if current == model.StatusCancelled {
			return failure.Conflict(errCancelled) // nolint:wrapcheck
		}

		return nil
	})
}

// Reschedule moves a booking to a new start. The end follows the procedure's current service time.
func (s *serviceImpl) Reschedule(ctx context.Context, tenantID, id string, req dto.RescheduleRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Reschedule")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.find(ctx, tenantID, id)
	if err != nil {
		return res, err
	}

	switch booking.Status {
	case model.StatusCancelled:
		return res, failure.Conflict(errCancelled) // nolint:wrapcheck
	case model.StatusNoShow:
		return res, failure.Conflict(errNoShow) // nolint:wrapcheck
	}

	start, err := s.resolveStart(req.Placement)
	if err != nil {
		return res, err
	}

	serviceTime, err := s.serviceTime(ctx, tenantID, booking.ProcedureID)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking.StartTime = start
	booking.EndTime = start.Add(serviceTime)
	booking.Status = model.StatusRescheduled
	booking.ModifiedAt = timezone.Now()
	booking.ModifiedBy = user

	err = s.withPractitionerLock(ctx, booking, func(ctx context.Context) error {
		return s.repo.Reschedule(ctx, booking)
	})
	if err != nil {
		return res, err
	}

	s.invalidate(ctx, tenantID, id)
	s.publish(ctx, model.EventRescheduled, booking)

	res.FromModel(booking)

	return res, nil
}

// CreateFollowUp books a return visit linked to originID.
func (s *serviceImpl) CreateFollowUp(ctx context.Context, tenantID, originID string, req dto.FollowUpRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CreateFollowUp")
	defer scope.End()
	defer scope.TraceIfError(&err)

	origin, err := s.find(ctx, tenantID, originID)
	if err != nil {
		return res, err
	}

	booking, err := s.newBooking(ctx, tenantID, req.ToCreate(origin))
	if err != nil {
		return res, err
	}

	booking.IsFollowUp = true
	booking.OriginBookingID = &origin.ID

	if err = s.reserve(ctx, booking); err != nil {
		return res, err
	}

	s.publish(ctx, model.EventFollowUpCreated, booking)

	res.FromModel(booking)

	return res, nil
}

// SendReminders publishes one reminder per scheduled booking starting on the day after now.
// A booking is reminded at most once per dedupe period.
func (s *serviceImpl) SendReminders(ctx context.Context, now time.Time) (sent int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SendReminders")
	defer scope.End()
	defer scope.TraceIfError(&err)

	from := clock.AddDays(timezone.ToAppTime(now), 1)
	to := clock.AddDays(from, 1)

	bookings, err := s.repo.ListStartingBetween(ctx, from, to, model.StatusScheduled)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings to remind")

		return 0, fmt.Errorf("failed to list bookings to remind: %w", err)
	}

	dedupeSeconds := s.cfg.Scheduling.ReminderDedupeHours * int(time.Hour/time.Second)

	messages := make([]kafka.Message, 0, len(bookings))
	keys := make([]string, 0, len(bookings))

	for _, booking := range bookings {
		key := shared.BuildCacheKey(cacheReminder, booking.ID)

		fresh, err := s.cache.SetNX(ctx, key, now.Unix(), dedupeSeconds)
		if err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to reserve reminder")

			continue
		}

		if !fresh {
			continue
		}

		keys = append(keys, key)
		messages = append(messages, kafka.Message{
			Key:   booking.PractitionerID,
			Value: model.NewEvent(model.EventReminder, booking, now),
		})
	}

	if len(messages) == 0 {
		return 0, nil
	}

	if err = s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.Reminder, messages...); err != nil {
		log.Error().Err(err).Int("count", len(messages)).Msg("failed to send reminders")

		for _, key := range keys {
			if err := s.cache.Delete(ctx, key); err != nil {
				log.Error().Err(err).Str("key", key).Msg("failed to release reminder")
			}
		}

		return 0, fmt.Errorf("failed to send reminders: %w", err)
	}

	log.Info().Int("count", len(messages)).Msg("reminders sent")

	return len(messages), nil
}

func (s *serviceImpl) newBooking(ctx context.Context, tenantID string, req dto.CreateBookingRequest) (model.Booking, error) {
	start, err := s.resolveStart(req.Placement)
	if err != nil {
		return model.Booking{}, err
	}

	serviceTime, err := s.serviceTime(ctx, tenantID, req.ProcedureID)
	if err != nil {
		return model.Booking{}, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return req.ToModel(tenantID, user, start, serviceTime), nil
}

func (s *serviceImpl) resolveStart(placement dto.Placement) (time.Time, error) {
	start, err := placement.Start(timezone.GetLocation())
	if err != nil {
		return start, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !start.After(timezone.Now()) {
		return start, failure.BadRequestFromString(errStartInPast) // nolint:wrapcheck
	}

	return start, nil
}

func (s *serviceImpl) serviceTime(ctx context.Context, tenantID, procedureID string) (time.Duration, error) {
	serviceTime, err := s.procedures.ServiceTime(ctx, tenantID, procedureID)
	if errors.Is(err, procedureModel.ErrNotFound) {
		return 0, failure.NotFoundFrom(procedureModel.ErrNotFound) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get procedure service time")

		return 0, fmt.Errorf("failed to get procedure service time: %w", err)
	}

	if serviceTime <= 0 {
		return 0, failure.BadRequestFromString(errServiceTime) // nolint:wrapcheck
	}

	return serviceTime, nil
}

func (s *serviceImpl) reserve(ctx context.Context, booking model.Booking) error {
	return s.withPractitionerLock(ctx, booking, func(ctx context.Context) error {
		return s.repo.Reserve(ctx, booking)
	})
}

// withPractitionerLock runs fn under the practitioner's distributed lock and maps
// overlap and contention errors to conflicts.
func (s *serviceImpl) withPractitionerLock(ctx context.Context, booking model.Booking, fn func(ctx context.Context) error) error {
	key := shared.BuildCacheKey(lockPrefix, booking.TenantID, booking.PractitionerID)

	err := s.locker.WithLock(ctx, key, fn)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrConflict):
		return failure.ConflictFrom(model.ErrConflict) // nolint:wrapcheck
	case errors.Is(err, redis.ErrLockNotAcquired):
		return failure.Conflict(errLockBusy) // nolint:wrapcheck
	default:
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to write booking")

		return fmt.Errorf("failed to write booking: %w", err)
	}
}

func (s *serviceImpl) find(ctx context.Context, tenantID, id string) (model.Booking, error) {
	booking, err := s.repo.FindByID(ctx, tenantID, id)
	if errors.Is(err, model.ErrNotFound) {
		return booking, failure.NotFoundFrom(model.ErrNotFound) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

// transition moves a booking to status after guard accepts its current status.
// A booking already in status is returned unchanged.
func (s *serviceImpl) transition(
	ctx context.Context,
	tenantID, id string,
	status model.Status,
	event model.EventType,
	guard func(current model.Status) error,
) (res dto.BookingResponse, err error) {
	booking, err := s.find(ctx, tenantID, id)
	if err != nil {
		return res, err
	}

	if booking.Status == status {
		res.FromModel(booking)

		return res, nil
	}

	if err = guard(booking.Status); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.UpdateStatus(ctx, tenantID, id, status, user); err != nil {
		log.Error().Err(err).Str("status", string(status)).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = status
	booking.ModifiedAt = timezone.Now()
	booking.ModifiedBy = user

	s.invalidate(ctx, tenantID, id)
	s.publish(ctx, event, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) publish(ctx context.Context, eventType model.EventType, booking model.Booking) {
	message := kafka.Message{
		Key:   booking.PractitionerID,
		Value: model.NewEvent(eventType, booking, timezone.Now()),
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.Booking, message); err != nil {
		log.Error().Err(err).Str("event", string(eventType)).Str("booking_id", booking.ID).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, tenantID, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, tenantID, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking cache")
	}
}
