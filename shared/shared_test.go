package shared_test

import (
	"context"
	"dentsched/shared"
	cacheMocks "dentsched/shared/cache/mocks"
	"dentsched/shared/constant"
	"dentsched/shared/dto"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type request struct {
		Name    string `db:"name"`
		Buffer  *int   `db:"buffer_minutes"`
		Ignored string
		Empty   string `db:"empty"`
	}

	zero := 0
	result := shared.TransformFields(request{Name: "Cleaning", Buffer: &zero, Ignored: "x"}, "admin")

	assert.Equal(t, "Cleaning", result["name"])
	assert.Equal(t, &zero, result["buffer_minutes"], "a set pointer to zero is still an update")
	assert.NotContains(t, result, "empty")
	assert.NotContains(t, result, "Ignored")
	assert.Equal(t, "admin", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
}

func TestFilterByTenant(t *testing.T) {
	group := shared.FilterByTenant("clinic-a", "bookings", dto.Filter{
		Field:    "status",
		Value:    "scheduled",
		Operator: dto.FilterOperatorEq,
	})

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.tenant_id = :tenant_id AND bookings.status = :status)", where)
	assert.Equal(t, map[string]any{"tenant_id": "clinic-a", "status": "scheduled"}, args)
}

func TestFilterByTenantAndID(t *testing.T) {
	group := shared.FilterByTenantAndID("clinic-a", "p-1", "id", "procedures")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(procedures.tenant_id = :tenant_id AND procedures.id = :id)", where)
	assert.Equal(t, "p-1", args["id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "procedure:get", shared.BuildCacheKey("procedure:get"))
	assert.Equal(t, "procedure:get:clinic-a:p-1", shared.BuildCacheKey("procedure:get", "clinic-a", "p-1"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}

	first := shared.BuildCacheKeyWithQuery("procedure:gets", params, shared.FilterByTenant("clinic-a", "procedures"))
	same := shared.BuildCacheKeyWithQuery("procedure:gets", params, shared.FilterByTenant("clinic-a", "procedures"))
	other := shared.BuildCacheKeyWithQuery("procedure:gets", params, shared.FilterByTenant("clinic-b", "procedures"))
	nextPage := shared.BuildCacheKeyWithQuery("procedure:gets", dto.QueryParams{Page: 2, Limit: 10}, shared.FilterByTenant("clinic-a", "procedures"))

	assert.Equal(t, first, same)
	assert.NotEqual(t, first, other)
	assert.NotEqual(t, first, nextPage)
	assert.Contains(t, first, "procedure:gets:")
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "procedure:gets:*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "procedure:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "procedure:gets:*").Return(errors.New("redis down"))
	require.NotPanics(t, func() {
		shared.InvalidateCaches(context.Background(), mockCache, "procedure:gets")
	})
}
