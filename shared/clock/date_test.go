package clock_test

import (
	"dentsched/shared/clock"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := clock.ParseDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, clock.Date{Year: 2025, Month: time.March, Day: 10}, date)
	assert.Equal(t, time.Monday, date.Weekday())
	assert.Equal(t, "2025-03-10", date.String())

	_, err = clock.ParseDate("10/03/2025")
	assert.ErrorIs(t, err, clock.ErrInvalidDate)
}

func TestDate_AddDays(t *testing.T) {
	date := clock.Date{Year: 2025, Month: time.February, Day: 25}

	assert.Equal(t, clock.Date{Year: 2025, Month: time.March, Day: 4}, date.AddDays(7))
	assert.Equal(t, clock.Date{Year: 2025, Month: time.March, Day: 27}, date.AddDays(30))
}

func TestDate_In(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	date := clock.Date{Year: 2025, Month: time.March, Day: 10}

	midnight := date.In(loc)
	assert.Equal(t, 0, midnight.Hour())
	assert.Equal(t, loc, midnight.Location())
	assert.Equal(t, date, clock.DateOf(midnight))
}

func TestDate_Scan(t *testing.T) {
	var date clock.Date

	require.NoError(t, date.Scan(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-03-10", date.String())

	require.NoError(t, date.Scan([]byte("2025-12-31")))
	assert.Equal(t, "2025-12-31", date.String())

	require.NoError(t, date.Scan("2024-02-29T00:00:00Z"))
	assert.Equal(t, "2024-02-29", date.String())

	assert.Error(t, date.Scan(42))

	value, err := date.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", value)
}

func TestDate_JSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		Date clock.Date `json:"date"`
	}{Date: clock.Date{Year: 2025, Month: time.July, Day: 4}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-07-04"}`, string(payload))

	var decoded struct {
		Date clock.Date `json:"date"`
	}

	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, 4, decoded.Date.Day)
	assert.Error(t, json.Unmarshal([]byte(`{"date":"tomorrow"}`), &decoded))
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, clock.DaysIn(2024, time.February))
	assert.Equal(t, 28, clock.DaysIn(2025, time.February))
	assert.Equal(t, 31, clock.DaysIn(2025, time.December))
}
