package availability_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "dentsched/infras/otel/mocks"
	availabilityMocks "dentsched/internal/domains/availability/mocks"
	"dentsched/internal/domains/availability/model/dto"
	"dentsched/internal/handlers/availability"
	"dentsched/shared/clock"
	"dentsched/shared/constant"
	"dentsched/shared/failure"
)

const (
	tenantID       = "clinic-a"
	practitionerID = "5d6e7f80-1a2b-4c3d-8e9f-a0b1c2d3e4f5"
	procedureID    = "3f1c4a1e-8d2b-4c55-9a1f-6e3b2d7c9a10"
)

func newRouter(t *testing.T) (http.Handler, *availabilityMocks.MockAvailability) {
	t.Helper()

	svc := availabilityMocks.NewMockAvailability(gomock.NewController(t))
	handler := availability.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeyTenantID, tenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	handler.Router(router)

	return router, svc
}

func TestHandler_GetSlots(t *testing.T) {
	t.Run("returns generated slots", func(t *testing.T) {
		router, svc := newRouter(t)

		date := clock.Date{Year: 2025, Month: time.March, Day: 10}
		start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

		svc.EXPECT().GenerateSlots(gomock.Any(), tenantID, date, practitionerID, procedureID).Return(dto.SlotsResponse{
			Date:  "2025-03-10",
			Slots: []dto.Slot{{Start: start, End: start.Add(40 * time.Minute)}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/slots?practitioner_id="+practitionerID+"&procedure_id="+procedureID+"&date=2025-03-10", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data dto.SlotsResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "2025-03-10", body.Data.Date)
		require.Len(t, body.Data.Slots, 1)
		assert.True(t, start.Equal(body.Data.Slots[0].Start))
	})

	t.Run("empty list is not an error", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().GenerateSlots(gomock.Any(), tenantID, gomock.Any(), practitionerID, procedureID).Return(dto.SlotsResponse{Slots: []dto.Slot{}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/slots?practitioner_id="+practitionerID+"&procedure_id="+procedureID+"&date=2025-03-09", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"slots":[]`)
	})

	t.Run("unknown procedure", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().GenerateSlots(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(dto.SlotsResponse{}, failure.NotFound("procedure not found"))

		req := httptest.NewRequest(http.MethodGet, "/slots?practitioner_id="+practitionerID+"&procedure_id="+procedureID+"&date=2025-03-10", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	badQueries := map[string]string{
		"missing practitioner": "/slots?procedure_id=" + procedureID + "&date=2025-03-10",
		"bad procedure":        "/slots?practitioner_id=" + practitionerID + "&procedure_id=cleaning&date=2025-03-10",
		"bad date":             "/slots?practitioner_id=" + practitionerID + "&procedure_id=" + procedureID + "&date=10-03-2025",
	}

	for name, target := range badQueries {
		t.Run(name, func(t *testing.T) {
			router, _ := newRouter(t)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_GetWeekAgenda(t *testing.T) {
	router, svc := newRouter(t)

	start := clock.Date{Year: 2025, Month: time.March, Day: 13}

	svc.EXPECT().WeekAgenda(gomock.Any(), tenantID, practitionerID, procedureID, start).Return(dto.WeekAgendaResponse{WeekStart: "2025-03-10"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/agenda/week?practitioner_id="+practitionerID+"&procedure_id="+procedureID+"&start=2025-03-13", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"week_start":"2025-03-10"`)
}
