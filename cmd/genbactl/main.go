package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/genbaflow/genba-backend-go/internal/cli"
	"github.com/genbaflow/genba-backend-go/internal/config"
	"github.com/genbaflow/genba-backend-go/internal/pkg/database"
	"github.com/genbaflow/genba-backend-go/internal/repository/postgresql"
	payrollService "github.com/genbaflow/genba-backend-go/internal/service/payroll"
	reviewService "github.com/genbaflow/genba-backend-go/internal/service/review"
)

var CLI struct {
	Version kong.VersionFlag

	Sync    cli.SyncCmd    `cmd:"" help:"Pull new work records into review."`
	Approve cli.ApproveCmd `cmd:"" help:"Approve every open pending record."`
	Reject  cli.RejectCmd  `cmd:"" help:"Reject every open pending record."`
	Reset   cli.ResetCmd   `cmd:"" help:"Clear pending, approved and rejected records."`
	Pending cli.PendingCmd `cmd:"" help:"List pending records with resolved values."`
	Payroll struct {
		Export cli.ExportCmd      `cmd:"" help:"Export approved records to payroll."`
		List   cli.PayrollListCmd `cmd:"" help:"List payroll entries."`
	} `cmd:"" help:"Payroll operations."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("genbactl"),
		kong.Description("Attendance review and payroll operations"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	schema, err := config.LoadSchema(cfg.App.SchemaFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading schema mapping: %v\n", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.VerifySchema(context.Background(), db, schema); err != nil {
		fmt.Fprintf(os.Stderr, "Schema verification failed: %v\n", err)
		os.Exit(1)
	}

	workRepo := postgresql.NewWorkRecordRepository(db)
	pendingRepo := postgresql.NewPendingReviewRepository(db)
	approvedRepo := postgresql.NewApprovedRepository(db)
	rejectedRepo := postgresql.NewRejectedRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	appCtx := &cli.Context{
		Review:  reviewService.NewReviewService(workRepo, pendingRepo, approvedRepo, rejectedRepo),
		Export:  payrollService.NewExportService(approvedRepo, workerRepo, payrollRepo),
		Payroll: payrollRepo,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
