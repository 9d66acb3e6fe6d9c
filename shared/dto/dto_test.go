package dto_test

import (
	"dentsched/shared/constant"
	"dentsched/shared/dto"
	"dentsched/shared/model"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadataFrom(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		metadata model.Metadata
		modified bool
	}{
		{
			name:     "never modified",
			metadata: model.NewMetadata("front-desk", createdAt),
		},
		{
			name: "modified later",
			metadata: model.Metadata{
				CreatedAt:  createdAt,
				CreatedBy:  "front-desk",
				ModifiedAt: createdAt.Add(24 * time.Hour),
				ModifiedBy: "dentist",
			},
			modified: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := dto.MetadataFrom(tt.metadata)

			assert.Equal(t, createdAt.Format(constant.DateFormat), mustReformat(res.CreatedAt))
			assert.Equal(t, "front-desk", res.CreatedBy)

			if !tt.modified {
				assert.Empty(t, res.ModifiedAt)
				assert.Empty(t, res.ModifiedBy)

				return
			}

			assert.Equal(t, tt.metadata.ModifiedAt.Format(constant.DateFormat), mustReformat(res.ModifiedAt))
			assert.Equal(t, "dentist", res.ModifiedBy)
		})
	}
}

// mustReformat normalises a timestamp printed in clinic time back to UTC.
func mustReformat(value string) string {
	parsed, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		return value
	}

	return parsed.UTC().Format(constant.DateFormat)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all valid parameters",
			query:    "page=2&limit=20&sort_by=name&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: "ASC"},
		},
		{
			name:           "defaults applied",
			query:          "",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults",
			query:    "",
			expected: dto.QueryParams{},
		},
		{
			name:     "limit capped",
			query:    "limit=5000",
			expected: dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:           "invalid numbers fall back to defaults",
			query:          "page=-1&limit=abc&sort_dir=sideways",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/admin/procedures?"+tt.query, nil)

			queryParams := dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, queryParams)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, (&dto.QueryParams{}).Offset())
	assert.Equal(t, 0, (&dto.QueryParams{Page: 1, Limit: 10}).Offset())
	assert.Equal(t, 20, (&dto.QueryParams{Page: 3, Limit: 10}).Offset())
	assert.Equal(t, 0, (&dto.QueryParams{Page: 3}).Offset())
}

func TestQueryParams_RestrictSort(t *testing.T) {
	params := dto.QueryParams{SortBy: "name; DROP TABLE procedures"}
	params.RestrictSort("name", "name", "created_at")

	assert.Equal(t, "name", params.SortBy)
	assert.Equal(t, dto.SortDirAsc, params.SortDir)

	params = dto.QueryParams{SortBy: "created_at", SortDir: dto.SortDirDesc}
	params.RestrictSort("name", "name", "created_at")

	assert.Equal(t, "created_at", params.SortBy)
	assert.Equal(t, dto.SortDirDesc, params.SortDir)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "strictly less with arg name",
			filter:    dto.Filter{Field: "start_time", ArgName: "day_end", Operator: dto.FilterOperatorLess, Value: 10, Table: "bookings"},
			wantWhere: "bookings.start_time < :day_end",
			wantArgs:  map[string]any{"day_end": 10},
		},
		{
			name:      "strictly greater",
			filter:    dto.Filter{Field: "end_time", ArgName: "day_start", Operator: dto.FilterOperatorGreater, Value: 1},
			wantWhere: "end_time > :day_start",
			wantArgs:  map[string]any{"day_start": 1},
		},
		{
			name:      "not equal",
			filter:    dto.Filter{Field: "status", Operator: dto.FilterOperatorNotEq, Value: "cancelled"},
			wantWhere: "status != :status",
			wantArgs:  map[string]any{"status": "cancelled"},
		},
		{
			name:      "in over slice",
			filter:    dto.Filter{Field: "day_of_week", Operator: dto.FilterOperatorIn, Value: []int{1, 3}},
			wantWhere: "day_of_week IN (:day_of_week_0, :day_of_week_1)",
			wantArgs:  map[string]any{"day_of_week_0": 1, "day_of_week_1": 3},
		},
		{
			name:      "in over empty slice",
			filter:    dto.Filter{Field: "day_of_week", Operator: dto.FilterOperatorIn, Value: []int{}},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "like",
			filter:    dto.Filter{Field: "name", Operator: dto.FilterOperatorLike, Value: "clean"},
			wantWhere: "LOWER(name) LIKE LOWER(:name)",
			wantArgs:  map[string]any{"name": "%clean%"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "origin_booking_id", Operator: dto.FilterIsNull},
			wantWhere: "origin_booking_id IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_Nested(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "tenant_id", Operator: dto.FilterOperatorEq, Value: "clinic-a"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "status", ArgName: "s1", Operator: dto.FilterOperatorEq, Value: "scheduled"},
					dto.Filter{Field: "status", ArgName: "s2", Operator: dto.FilterOperatorEq, Value: "confirmed"},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(tenant_id = :tenant_id AND (status = :s1 OR status = :s2))", where)
	assert.Len(t, args, 3)

	empty := dto.FilterGroup{}
	where, _ = empty.GetWhereClause()
	assert.Empty(t, where)

	defaulted := dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "a", Operator: dto.FilterOperatorEq, Value: 1},
		dto.FilterGroup{},
		dto.Filter{Field: "b", Operator: dto.FilterOperatorEq, Value: 2},
	}}
	where, _ = defaulted.GetWhereClause()
	assert.Equal(t, "(a = :a AND b = :b)", where)
}
