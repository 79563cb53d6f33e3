package billing_test

import (
	"testing"

	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/SscSPs/estate_admin_console/internal/utils/billing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestUnitsConsumed_NeverNegative(t *testing.T) {
	tests := []struct {
		name              string
		previous, current string
		want              string
	}{
		{name: "normal consumption", previous: "100", current: "150", want: "50"},
		{name: "no consumption", previous: "100", current: "100", want: "0"},
		{name: "meter rolled back", previous: "180", current: "120", want: "0"},
		{name: "fractional", previous: "10.25", current: "12.5", want: "2.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := billing.UnitsConsumed(d(tt.previous), d(tt.current))
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
			assert.False(t, got.IsNegative())
		})
	}
}

func TestAmountDue_IsExact(t *testing.T) {
	assert.Equal(t, "125", billing.AmountDue(d("50"), d("2.5")).String())
	assert.Equal(t, "0.3", billing.AmountDue(d("0.1"), d("3")).String())
	assert.True(t, billing.AmountDue(d("0"), d("9.99")).IsZero())
}

func TestTotalAmount(t *testing.T) {
	assert.Equal(t, "37.5", billing.TotalAmount(15, d("2.5")).String())
	assert.True(t, billing.TotalAmount(0, d("2.5")).IsZero())
}

func TestPreviousReading_FallsBackToStartingReading(t *testing.T) {
	customer := domain.WaterSupplyCustomer{ID: "c1", StartingReading: d("100"), UnitPrice: d("2.5")}

	bill := billing.ComputeBill(customer, nil, d("150"), "")

	assert.True(t, bill.PreviousReading.Equal(d("100")))
	assert.True(t, bill.UnitsConsumed.Equal(d("50")))
	assert.Equal(t, "125.00", bill.AmountDue.StringFixed(2))
}

func TestPreviousReading_MostRecentByDate(t *testing.T) {
	customer := domain.WaterSupplyCustomer{ID: "c1", StartingReading: d("0"), UnitPrice: d("1")}
	readings := []domain.WaterSupplyReading{
		{ID: "r2", CustomerID: "c1", ReadingDate: domain.MustParseDate("2024-02-01"), MeterReading: d("180")},
		{ID: "r1", CustomerID: "c1", ReadingDate: domain.MustParseDate("2024-01-01"), MeterReading: d("100")},
		{ID: "x1", CustomerID: "other", ReadingDate: domain.MustParseDate("2024-05-01"), MeterReading: d("999")},
	}

	bill := billing.ComputeBill(customer, readings, d("220"), "")

	assert.True(t, bill.PreviousReading.Equal(d("180")))
	assert.True(t, bill.UnitsConsumed.Equal(d("40")))
}

func TestPreviousReading_ExcludesEditedReading(t *testing.T) {
	customer := domain.WaterSupplyCustomer{ID: "c1", StartingReading: d("50")}
	readings := []domain.WaterSupplyReading{
		{ID: "r1", CustomerID: "c1", ReadingDate: domain.MustParseDate("2024-01-01"), MeterReading: d("100")},
		{ID: "r2", CustomerID: "c1", ReadingDate: domain.MustParseDate("2024-02-01"), MeterReading: d("180")},
	}

	assert.True(t, billing.PreviousReading(customer, readings, "r2").Equal(d("100")))
	assert.True(t, billing.PreviousReading(customer, readings[:1], "r1").Equal(d("50")))
}

func TestPreviousReading_TieBreaksOnLaterPosition(t *testing.T) {
	customer := domain.WaterSupplyCustomer{ID: "c1"}
	readings := []domain.WaterSupplyReading{
		{ID: "a", CustomerID: "c1", ReadingDate: domain.MustParseDate("2024-03-01"), MeterReading: d("200")},
		{ID: "b", CustomerID: "c1", ReadingDate: domain.MustParseDate("2024-03-01"), MeterReading: d("210")},
	}

	assert.True(t, billing.PreviousReading(customer, readings, "").Equal(d("210")))
}

func TestBillAt_UsesFrozenPrice(t *testing.T) {
	bill := billing.BillAt(d("100"), d("130"), d("2"))
	assert.True(t, bill.AmountDue.Equal(d("60")))
	assert.True(t, bill.UnitPrice.Equal(d("2")))
}
