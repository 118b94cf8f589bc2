package cli

import (
	"context"
	"fmt"
	"strings"
)

type ExportCmd struct{}

func (c *ExportCmd) Run(ctx *Context) error {
	result, err := ctx.Export.ExportApproved(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d entries, %d already present\n", result.Exported, result.SkippedExisting)
	if len(result.UnknownWorkers) > 0 {
		fmt.Printf("Not in worker master, skipped: %s\n", strings.Join(result.UnknownWorkers, ", "))
	}
	return nil
}

type PayrollListCmd struct {
	Month string `help:"Restrict to one month (YYYY-MM)."`
}

func (c *PayrollListCmd) Run(ctx *Context) error {
	entries, err := ctx.Payroll.ReadAll(context.Background())
	if err != nil {
		return err
	}

	shown := 0
	for _, e := range entries {
		if c.Month != "" && e.YearMonth != c.Month {
			continue
		}
		fmt.Printf("%-24s %s  %-20s %s  qty=%.2g ot=%.2g  rate=%s amount=%s\n",
			e.Key, e.Date.Format("2006-01-02"), e.Site, e.WorkerName,
			e.Quantity, e.OvertimeHours, e.DailyRate.StringFixed(0), e.Amount.StringFixed(0))
		shown++
	}

	if shown == 0 {
		fmt.Println("No payroll entries.")
	}
	return nil
}
