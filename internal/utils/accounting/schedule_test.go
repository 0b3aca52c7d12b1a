package accounting

import (
	"fmt"
	"testing"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("ins-%d", n)
	}
}

func TestGenerateSchedule_SplitsRemainderIntoLastInstallment(t *testing.T) {
	start := domain.NewDate(2024, 1, 1)

	got, err := GenerateSchedule(1000, start, domain.RepaymentInstallment, 3, sequentialIDs())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, []domain.Installment{
		{ID: "ins-1", DueDate: domain.NewDate(2024, 1, 1), Amount: 333},
		{ID: "ins-2", DueDate: domain.NewDate(2024, 2, 1), Amount: 333},
		{ID: "ins-3", DueDate: domain.NewDate(2024, 3, 1), Amount: 334},
	}, got)
}

func TestGenerateSchedule_SumIsExact(t *testing.T) {
	start := domain.NewDate(2024, 5, 15)
	for _, total := range []int64{1, 7, 999, 1000, 1001, 12345678, 50000000} {
		for count := 1; count <= 36; count++ {
			got, err := GenerateSchedule(total, start, domain.RepaymentInstallment, count, sequentialIDs())
			require.NoError(t, err)
			require.Len(t, got, count)

			var sum int64
			for _, ins := range got {
				sum += ins.Amount
				assert.False(t, ins.IsPaid)
			}
			assert.Equal(t, total, sum, "total=%d count=%d", total, count)
		}
	}
}

func TestGenerateSchedule_RollsOverYearsAndMonthEnds(t *testing.T) {
	got, err := GenerateSchedule(400, domain.NewDate(2023, 11, 30), domain.RepaymentInstallment, 4, sequentialIDs())
	require.NoError(t, err)

	assert.Equal(t, domain.NewDate(2023, 11, 30), got[0].DueDate)
	assert.Equal(t, domain.NewDate(2023, 12, 30), got[1].DueDate)
	assert.Equal(t, domain.NewDate(2024, 1, 30), got[2].DueDate)
	// February 30th does not exist and rolls over into March
	assert.Equal(t, domain.NewDate(2024, 3, 1), got[3].DueDate)
}

func TestGenerateSchedule_LumpSum(t *testing.T) {
	start := domain.NewDate(2024, 6, 10)

	got, err := GenerateSchedule(2500000, start, domain.RepaymentLumpSum, 12, sequentialIDs())
	require.NoError(t, err)
	assert.Equal(t, []domain.Installment{{ID: "ins-1", DueDate: start, Amount: 2500000}}, got)
}

func TestGenerateSchedule_SingleInstallment(t *testing.T) {
	start := domain.NewDate(2024, 6, 10)

	got, err := GenerateSchedule(777, start, domain.RepaymentInstallment, 1, sequentialIDs())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(777), got[0].Amount)
	assert.Equal(t, start, got[0].DueDate)
}

func TestGenerateSchedule_InvalidInput(t *testing.T) {
	start := domain.NewDate(2024, 1, 1)
	tests := []struct {
		name  string
		total int64
		start domain.Date
		rt    domain.RepaymentType
		count int
	}{
		{"zero total", 0, start, domain.RepaymentInstallment, 3},
		{"negative total", -10, start, domain.RepaymentInstallment, 3},
		{"zero count", 1000, start, domain.RepaymentInstallment, 0},
		{"negative count", 1000, start, domain.RepaymentInstallment, -2},
		{"missing start", 1000, domain.Date{}, domain.RepaymentInstallment, 3},
		{"unknown type", 1000, start, domain.RepaymentType("weekly"), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSchedule(tt.total, tt.start, tt.rt, tt.count, sequentialIDs())
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}
