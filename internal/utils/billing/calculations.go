package billing

import (
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UnitsConsumed returns max(0, current - previous). A meter reading lower than
// the previous one yields zero consumption, not an error.
func UnitsConsumed(previous, current decimal.Decimal) decimal.Decimal {
	units := current.Sub(previous)
	if units.IsNegative() {
		return decimal.Zero
	}
	return units
}

// AmountDue returns units * unitPrice without rounding.
func AmountDue(units, unitPrice decimal.Decimal) decimal.Decimal {
	return units.Mul(unitPrice)
}

// TotalAmount returns quantity * unitPrice for count based sales such as
// buckets of water or toilet visits.
func TotalAmount(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(quantity).Mul(unitPrice)
}

// PreviousReading returns the meter value of the customer's most recent
// reading by ReadingDate, ignoring the reading identified by excludingID.
// When two readings share a date, the one appearing later in readings wins.
// Readings of other customers are ignored. Without any prior reading the
// customer's StartingReading is returned.
func PreviousReading(customer domain.WaterSupplyCustomer, readings []domain.WaterSupplyReading, excludingID string) decimal.Decimal {
	var latest *domain.WaterSupplyReading
	for i := range readings {
		r := &readings[i]
		if r.CustomerID != customer.ID {
			continue
		}
		if excludingID != "" && r.ID == excludingID {
			continue
		}
		if latest == nil || !r.ReadingDate.Before(latest.ReadingDate.Time) {
			latest = r
		}
	}
	if latest == nil {
		return customer.StartingReading
	}
	return latest.MeterReading
}

// ComputeBill derives a reading's bill against the customer's current unit
// price. Used for both the live preview and the persisted value so the two
// cannot diverge.
func ComputeBill(customer domain.WaterSupplyCustomer, readings []domain.WaterSupplyReading, meterReading decimal.Decimal, excludingID string) domain.Bill {
	previous := PreviousReading(customer, readings, excludingID)
	return BillAt(previous, meterReading, customer.UnitPrice)
}

// BillAt derives a bill from an explicit previous reading and a frozen unit price.
func BillAt(previous, meterReading, unitPrice decimal.Decimal) domain.Bill {
	units := UnitsConsumed(previous, meterReading)
	return domain.Bill{
		PreviousReading: previous,
		MeterReading:    meterReading,
		UnitsConsumed:   units,
		UnitPrice:       unitPrice,
		AmountDue:       AmountDue(units, unitPrice),
	}
}
