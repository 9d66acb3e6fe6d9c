package main

import (
	"context"
	"dentsched/config"
	"dentsched/infras/jwt"
	"dentsched/infras/otel"
	"dentsched/infras/postgres"
	bookingModel "dentsched/internal/domains/booking/model"
	bookingDto "dentsched/internal/domains/booking/model/dto"
	bookingRepository "dentsched/internal/domains/booking/repository"
	procedureModel "dentsched/internal/domains/procedure/model"
	procedureDto "dentsched/internal/domains/procedure/model/dto"
	procedureRepository "dentsched/internal/domains/procedure/repository"
	scheduleModel "dentsched/internal/domains/schedule/model"
	scheduleRepository "dentsched/internal/domains/schedule/repository"
	"dentsched/shared/clock"
	"dentsched/shared/constant"
	gModel "dentsched/shared/model"
	"dentsched/shared/logger"
	"dentsched/shared/timezone"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	seedUser          = "seed"
	bookingsPerDay    = 4
	slotStepMinutes   = 15
	maxPlacementTries = 10
)

var procedures = []procedureDto.CreateProcedureRequest{
	{Name: "Check-up", DurationMinutes: 30, BufferMinutes: 10},
	{Name: "Scale and polish", DurationMinutes: 45, BufferMinutes: 15},
	{Name: "Filling", DurationMinutes: 60, BufferMinutes: 15},
	{Name: "Root canal", DurationMinutes: 90, BufferMinutes: 30},
	{Name: "Whitening", DurationMinutes: 60, BufferMinutes: 0},
}

type seeder struct {
	tenantID   string
	procedures procedureRepository.Procedure
	schedules  scheduleRepository.Schedule
	bookings   bookingRepository.Booking
}

func main() {
	tenantID := flag.String("tenant", "demo-clinic", "tenant to seed")
	practitioners := flag.Int("practitioners", 2, "number of practitioners")
	days := flag.Int("days", 5, "days ahead to fill with bookings")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	db := postgres.New(cfg)
	tracer := otel.New(cfg)

	s := seeder{
		tenantID:   *tenantID,
		procedures: procedureRepository.New(db, tracer),
		schedules:  scheduleRepository.New(db, tracer),
		bookings:   bookingRepository.New(db, tracer),
	}

	ctx := context.Background()

	seeded, err := s.seedProcedures(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed procedures")
	}

	for range *practitioners {
		practitionerID := uuid.NewString()

		if err := s.seedWeek(ctx, practitionerID); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed weekly rules")
		}

		reserved := s.seedBookings(ctx, practitionerID, seeded, *days)

		log.Info().Str("practitioner_id", practitionerID).Int("bookings", reserved).Msg("Seeded practitioner")
	}

	token, err := jwt.New(cfg).Issue(jwt.Identity{UserID: uuid.NewString(), Email: gofakeit.Email(), Role: constant.RoleAdmin, TenantID: s.tenantID})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to issue admin token")
	}

	fmt.Printf("tenant: %s\nadmin token: %s\n", s.tenantID, token) //nolint:forbidigo
}

func (s seeder) seedProcedures(ctx context.Context) ([]procedureModel.Procedure, error) {
	seeded := make([]procedureModel.Procedure, 0, len(procedures))

	for _, req := range procedures {
		procedure := req.ToModel(s.tenantID, seedUser)

		if err := s.procedures.Insert(ctx, procedure); err != nil {
			return nil, fmt.Errorf("failed to insert procedure %s: %w", req.Name, err)
		}

		seeded = append(seeded, procedure)
	}

	return seeded, nil
}

func window(fromHour, toHour int) (*clock.TimeOfDay, *clock.TimeOfDay) {
	from, to := clock.New(fromHour, 0), clock.New(toHour, 0)

	return &from, &to
}

// seedWeek opens Monday to Friday with a lunch break and Saturday mornings.
func (s seeder) seedWeek(ctx context.Context, practitionerID string) error {
	rules := make([]scheduleModel.WeeklyRule, 0, constant.DaysPerWeek)

	for day := time.Monday; day <= time.Saturday; day++ {
		rule := scheduleModel.WeeklyRule{
			ID:             uuid.NewString(),
			TenantID:       s.tenantID,
			PractitionerID: practitionerID,
			DayOfWeek:      int(day),
			Metadata:       gModel.NewMetadata(seedUser, timezone.Now()),
		}

		rule.MorningStart, rule.MorningEnd = window(morningStart.Hour(), morningStart.Hour()+morningMinutes/60)

		if day != time.Saturday {
			rule.AfternoonStart, rule.AfternoonEnd = window(13, 17)
		}

		rules = append(rules, rule)
	}

	if err := s.schedules.ReplaceWeek(ctx, s.tenantID, practitionerID, rules); err != nil {
		return fmt.Errorf("failed to replace week: %w", err)
	}

	return nil
}

var morningStart = clock.New(8, 0)

const morningMinutes = 4 * 60

// seedBookings places random bookings inside the morning window. Overlaps are left to Reserve.
func (s seeder) seedBookings(ctx context.Context, practitionerID string, seeded []procedureModel.Procedure, days int) int {
	reserved := 0
	today := clock.StartOfDay(timezone.Now())

	for offset := 1; offset <= days; offset++ {
		day := clock.AddDays(today, offset)
		if day.Weekday() == time.Sunday {
			continue
		}

		for range bookingsPerDay {
			procedure := seeded[gofakeit.Number(0, len(seeded)-1)]
			steps := max(0, (morningMinutes-int(procedure.ServiceTime().Minutes()))/slotStepMinutes)

			for range maxPlacementTries {
				start := morningStart.On(day).Add(time.Duration(gofakeit.Number(0, steps)*slotStepMinutes) * time.Minute)

				req := bookingDto.CreateBookingRequest{
					PractitionerID: practitionerID,
					PatientID:      uuid.NewString(),
					ProcedureID:    procedure.ID,
					Notes:          fmt.Sprintf("%s for %s", procedure.Name, gofakeit.Name()),
				}

				err := s.bookings.Reserve(ctx, req.ToModel(s.tenantID, seedUser, start, procedure.ServiceTime()))
				if errors.Is(err, bookingModel.ErrConflict) {
					continue
				}

				if err != nil {
					log.Warn().Err(err).Msg("failed to reserve seed booking")

					break
				}

				reserved++

				break
			}
		}
	}

	return reserved
}
