package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_AddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  domain.Date
		months int
		want   domain.Date
	}{
		{"same month", domain.NewDate(2024, time.January, 1), 0, domain.NewDate(2024, time.January, 1)},
		{"next month", domain.NewDate(2024, time.January, 15), 1, domain.NewDate(2024, time.February, 15)},
		{"year rollover", domain.NewDate(2024, time.November, 10), 3, domain.NewDate(2025, time.February, 10)},
		{"day overflow in leap year", domain.NewDate(2024, time.January, 31), 1, domain.NewDate(2024, time.March, 2)},
		{"day overflow in common year", domain.NewDate(2023, time.January, 31), 1, domain.NewDate(2023, time.March, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.AddMonths(tt.months))
		})
	}
}

func TestDate_StringAndMonthKey(t *testing.T) {
	d := domain.NewDate(2024, time.March, 5)

	assert.Equal(t, "2024-03-05", d.String())
	assert.Equal(t, "2024-03", d.MonthKey())
	assert.Equal(t, "", domain.Date{}.String())
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		Due domain.Date `json:"due"`
	}

	data, err := json.Marshal(wrapper{Due: domain.NewDate(2025, time.December, 31)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2025-12-31"}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2024-02-29"}`), &w))
	assert.Equal(t, domain.NewDate(2024, time.February, 29), w.Due)

	require.NoError(t, json.Unmarshal([]byte(`{"due":""}`), &w))
	assert.True(t, w.Due.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"due":"2024-13-01"}`), &w))
	assert.Error(t, json.Unmarshal([]byte(`{"due":20240101}`), &w))
}

func TestDate_Ordering(t *testing.T) {
	a := domain.NewDate(2024, time.May, 1)
	b := domain.NewDate(2024, time.May, 2)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
}
