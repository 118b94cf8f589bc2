package worker

import (
	"github.com/shopspring/decimal"
)

// Worker is one row of the worker master: the payroll allow-list plus the
// base day rate used for payout calculation.
type Worker struct {
	Name      string
	DailyRate decimal.Decimal
}
