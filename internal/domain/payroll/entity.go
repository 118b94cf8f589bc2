package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// OvertimeMultiplier applied to the hourly rate for overtime hours.
var OvertimeMultiplier = decimal.NewFromFloat(1.25)

// Entry is one payroll-ready row built from an approved record and the
// worker master.
type Entry struct {
	Key           string
	YearMonth     string
	Date          time.Time
	Site          string
	WorkType      string
	WorkerName    string
	Quantity      float64
	OvertimeHours float64
	DailyRate     decimal.Decimal
	Amount        decimal.Decimal
	Status        string
}

// Amount for one worker-day: rate*qty plus (rate/8)*multiplier per overtime
// hour, truncated to whole yen.
func CalculateAmount(rate decimal.Decimal, quantity, overtimeHours float64) decimal.Decimal {
	qty := decimal.NewFromFloat(quantity)
	ot := decimal.NewFromFloat(overtimeHours)

	base := rate.Mul(qty)
	hourly := rate.Div(decimal.NewFromInt(8))
	overtime := hourly.Mul(OvertimeMultiplier).Mul(ot)

	return base.Add(overtime).Floor()
}
