package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dentsched/config"
	"dentsched/infras/otel"
	"dentsched/internal/domains/availability/engine"
	"dentsched/internal/domains/availability/model/dto"
	bookingModel "dentsched/internal/domains/booking/model"
	bookingRepo "dentsched/internal/domains/booking/repository"
	exceptionService "dentsched/internal/domains/exception/service"
	procedureModel "dentsched/internal/domains/procedure/model"
	procedureRepo "dentsched/internal/domains/procedure/repository"
	scheduleService "dentsched/internal/domains/schedule/service"
	"dentsched/shared/clock"
	"dentsched/shared/constant"
	"dentsched/shared/failure"
	"dentsched/shared/timezone"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var defaultOffsets = []int{7, 14, 30}

type Availability interface {
	GenerateSlots(ctx context.Context, tenantID string, date clock.Date, practitionerID, procedureID string) (dto.SlotsResponse, error)
	WeekAgenda(ctx context.Context, tenantID, practitionerID, procedureID string, start clock.Date) (dto.WeekAgendaResponse, error)
	SuggestFollowUps(ctx context.Context, tenantID, originBookingID string, offsets []int) (dto.FollowUpSuggestionsResponse, error)
	DefaultOffsets() []int
}

type serviceImpl struct {
	procedures procedureRepo.Procedure
	schedules  scheduleService.Schedule
	exceptions exceptionService.Exception
	bookings   bookingRepo.Booking
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	procedures procedureRepo.Procedure,
	schedules scheduleService.Schedule,
	exceptions exceptionService.Exception,
	bookings bookingRepo.Booking,
	cfg *config.Config,
	otel otel.Otel,
) Availability {
	return &serviceImpl{
		procedures: procedures,
		schedules:  schedules,
		exceptions: exceptions,
		bookings:   bookings,
		cfg:        cfg,
		otel:       otel,
	}
}

// day is the outcome of one slot generation run.
type day struct {
	starts []time.Time
	booked int
}

func (s *serviceImpl) GenerateSlots(ctx context.Context, tenantID string, date clock.Date, practitionerID, procedureID string) (res dto.SlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.GenerateSlots")
	defer scope.End()
	defer scope.TraceIfError(&err)

	serviceTime, err := s.serviceTime(ctx, tenantID, procedureID)
	if err != nil {
		return res, err
	}

	result, err := s.generate(ctx, tenantID, practitionerID, date, serviceTime)
	if err != nil {
		return res, err
	}

	res.FromStarts(date, practitionerID, procedureID, serviceTime, result.starts)

	return res, nil
}

// WeekAgenda generates the Monday to Sunday week containing start, one goroutine per day.
func (s *serviceImpl) WeekAgenda(ctx context.Context, tenantID, practitionerID, procedureID string, start clock.Date) (res dto.WeekAgendaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.WeekAgenda")
	defer scope.End()
	defer scope.TraceIfError(&err)

	serviceTime, err := s.serviceTime(ctx, tenantID, procedureID)
	if err != nil {
		return res, err
	}

	monday := clock.DateOf(clock.StartOfWeek(start.In(timezone.GetLocation())))
	days := make([]dto.AgendaDay, constant.DaysPerWeek)

	group, groupCtx := errgroup.WithContext(ctx)

	for i := range days {
		date := monday.AddDays(i)

		group.Go(func() error {
			result, err := s.generate(groupCtx, tenantID, practitionerID, date, serviceTime)
			if err != nil {
				return err
			}

			days[i].FromStarts(date, result.booked, serviceTime, result.starts)

			return nil
		})
	}

	if err = group.Wait(); err != nil {
		return res, err //nolint:wrapcheck
	}

	res.WeekStart = monday.String()
	res.PractitionerID = practitionerID
	res.ProcedureID = procedureID
	res.Days = days

	return res, nil
}

// SuggestFollowUps generates the slots of the origin booking's date shifted by each
// offset, for the origin's practitioner and procedure. Results follow ascending offset.
// No offsets means the configured defaults.
func (s *serviceImpl) SuggestFollowUps(ctx context.Context, tenantID, originBookingID string, offsets []int) (res dto.FollowUpSuggestionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.SuggestFollowUps")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if len(offsets) == 0 {
		offsets = s.DefaultOffsets()
	}

	offsets, err = dto.NormalizeOffsets(offsets)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	origin, err := s.bookings.FindByID(ctx, tenantID, originBookingID)
	if errors.Is(err, bookingModel.ErrNotFound) {
		return res, failure.NotFoundFrom(bookingModel.ErrNotFound) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get origin booking")

		return res, fmt.Errorf("failed to get origin booking: %w", err)
	}

	serviceTime, err := s.serviceTime(ctx, tenantID, origin.ProcedureID)
	if err != nil {
		return res, err
	}

	originDate := clock.DateOf(timezone.ToAppTime(origin.StartTime))
	suggestions := make([]dto.FollowUpSuggestion, len(offsets))

	group, groupCtx := errgroup.WithContext(ctx)

	for i, offset := range offsets {
		target := originDate.AddDays(offset)

		group.Go(func() error {
			result, err := s.generate(groupCtx, tenantID, origin.PractitionerID, target, serviceTime)
			if err != nil {
				return err
			}

			suggestions[i] = dto.FollowUpSuggestion{
				OffsetDays: offset,
				Date:       target.String(),
				Slots:      dto.FromStarts(result.starts, serviceTime),
			}

			return nil
		})
	}

	if err = group.Wait(); err != nil {
		return res, err //nolint:wrapcheck
	}

	res.OriginBookingID = origin.ID
	res.OriginDate = originDate.String()
	res.Suggestions = suggestions

	return res, nil
}

// DefaultOffsets returns the configured follow-up offsets.
func (s *serviceImpl) DefaultOffsets() []int {
	if len(s.cfg.Scheduling.FollowUpOffsetDays) == 0 {
		return defaultOffsets
	}

	return s.cfg.Scheduling.FollowUpOffsetDays
}

// generate composes weekly rule, exception and bookings of one date into slots.
// A non-positive service time yields no slots. Bookings are only read for a day
// with an open window, so booked stays zero on a closed day.
func (s *serviceImpl) generate(ctx context.Context, tenantID, practitionerID string, date clock.Date, serviceTime time.Duration) (day, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.generate")
	defer scope.End()

	scope.SetAttribute("availability.date", date.String())

	if serviceTime <= 0 {
		log.Warn().Str("practitioner_id", practitionerID).Dur("service_time", serviceTime).Msg("non-positive service time, no slots")

		return day{starts: []time.Time{}}, nil
	}

	base, err := s.schedules.GetWeeklyWindows(ctx, tenantID, practitionerID, int(date.Weekday()))
	if err != nil {
		scope.TraceError(err)

		return day{}, fmt.Errorf("failed to get weekly windows: %w", err)
	}

	if base.Closed() {
		return day{starts: []time.Time{}}, nil
	}

	override, err := s.exceptions.GetException(ctx, tenantID, practitionerID, date)
	if err != nil {
		scope.TraceError(err)

		return day{}, fmt.Errorf("failed to get exception: %w", err)
	}

	windows := engine.ApplyException(base, override)
	if windows.Closed() {
		return day{starts: []time.Time{}}, nil
	}

	midnight := date.In(timezone.GetLocation())

	bookings, err := s.bookings.ListForDay(ctx, tenantID, practitionerID, midnight)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings for day")

		return day{}, fmt.Errorf("failed to list bookings for day: %w", err)
	}

	intervals := bookingModel.Intervals(bookings)

	return day{
		starts: engine.GenerateSlots(midnight, serviceTime, windows, intervals),
		booked: len(intervals),
	}, nil
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

	return serviceTime, nil
}
