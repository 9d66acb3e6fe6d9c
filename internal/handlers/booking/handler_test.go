package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "dentsched/infras/otel/mocks"
	availabilityMocks "dentsched/internal/domains/availability/mocks"
	availabilityDto "dentsched/internal/domains/availability/model/dto"
	bookingMocks "dentsched/internal/domains/booking/mocks"
	"dentsched/internal/domains/booking/model"
	"dentsched/internal/domains/booking/model/dto"
	"dentsched/internal/handlers/booking"
	"dentsched/shared/constant"
	"dentsched/shared/failure"
)

const (
	tenantID       = "clinic-a"
	bookingID      = "9b2e7c1a-4f3d-4e8a-b1c2-0d9e8f7a6b5c"
	practitionerID = "5d6e7f80-1a2b-4c3d-8e9f-a0b1c2d3e4f5"
	patientID      = "0a1b2c3d-4e5f-4061-8273-94a5b6c7d8e9"
	procedureID    = "3f1c4a1e-8d2b-4c55-9a1f-6e3b2d7c9a10"
)

type fixture struct {
	public       http.Handler
	admin        http.Handler
	bookings     *bookingMocks.MockBookingService
	availability *availabilityMocks.MockAvailability
}

func withTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), constant.ContextKeyTenantID, tenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		bookings:     bookingMocks.NewMockBookingService(ctrl),
		availability: availabilityMocks.NewMockAvailability(ctrl),
	}

	handler := booking.New(f.bookings, f.availability, otelMocks.NewOtel())

	public := chi.NewRouter()
	public.Use(withTenant)
	handler.PublicRouter(public)

	admin := chi.NewRouter()
	admin.Use(withTenant)
	handler.AdminRouter(admin)

	f.public = public
	f.admin = admin

	return f
}

func serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestHandler_CreateBooking(t *testing.T) {
	validBody := `{"practitioner_id":"` + practitionerID + `","patient_id":"` + patientID + `","procedure_id":"` + procedureID + `","date":"2099-03-10","start_time":"09:00"}`

	t.Run("created", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().Create(gomock.Any(), tenantID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
				assert.Equal(t, "2099-03-10", req.Date)
				assert.Equal(t, "09:00", req.StartTime)

				return dto.BookingResponse{ID: bookingID, Status: model.StatusScheduled}, nil
			})

		rec := serve(f.public, http.MethodPost, "/bookings", validBody)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), bookingID)
	})

	t.Run("conflict", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().Create(gomock.Any(), tenantID, gomock.Any()).Return(dto.BookingResponse{}, failure.ConflictFrom(model.ErrConflict))

		rec := serve(f.public, http.MethodPost, "/bookings", validBody)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), model.ErrConflict.Error())
	})

	t.Run("invalid body", func(t *testing.T) {
		f := newFixture(t)

		rec := serve(f.public, http.MethodPost, "/bookings", `{"practitioner_id":"dr-who","date":"tomorrow"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_PublicCannotMarkNoShow(t *testing.T) {
	f := newFixture(t)

	rec := serve(f.public, http.MethodPut, "/bookings/"+bookingID+"/no-show", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_MarkNoShow(t *testing.T) {
	f := newFixture(t)

	f.bookings.EXPECT().MarkNoShow(gomock.Any(), tenantID, bookingID).Return(dto.BookingResponse{ID: bookingID, Status: model.StatusNoShow}, nil)

	rec := serve(f.admin, http.MethodPut, "/bookings/"+bookingID+"/no-show", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"no_show"`)
}

func TestHandler_SuggestFollowUps(t *testing.T) {
	t.Run("default offsets", func(t *testing.T) {
		f := newFixture(t)

		f.availability.EXPECT().DefaultOffsets().Return([]int{7, 14, 30})
		f.availability.EXPECT().SuggestFollowUps(gomock.Any(), tenantID, bookingID, []int{7, 14, 30}).Return(
			availabilityDto.FollowUpSuggestionsResponse{OriginBookingID: bookingID}, nil)

		rec := serve(f.admin, http.MethodGet, "/bookings/"+bookingID+"/follow-up-suggestions", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("explicit offsets", func(t *testing.T) {
		f := newFixture(t)

		f.availability.EXPECT().DefaultOffsets().Return([]int{7, 14, 30})
		f.availability.EXPECT().SuggestFollowUps(gomock.Any(), tenantID, bookingID, []int{3, 10}).Return(
			availabilityDto.FollowUpSuggestionsResponse{OriginBookingID: bookingID}, nil)

		rec := serve(f.admin, http.MethodGet, "/bookings/"+bookingID+"/follow-up-suggestions?days=10,3", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad offsets", func(t *testing.T) {
		f := newFixture(t)

		f.availability.EXPECT().DefaultOffsets().Return([]int{7, 14, 30})

		rec := serve(f.admin, http.MethodGet, "/bookings/"+bookingID+"/follow-up-suggestions?days=400", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_GetDayAgenda(t *testing.T) {
	f := newFixture(t)

	f.bookings.EXPECT().DayAgenda(gomock.Any(), tenantID, "", gomock.Any()).Return(dto.DayAgendaResponse{Date: "2099-03-10"}, nil)

	rec := serve(f.admin, http.MethodGet, "/bookings?date=2099-03-10", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(f.admin, http.MethodGet, "/bookings?date=someday", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
