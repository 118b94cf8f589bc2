package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/genbaflow/genba-backend-go/internal/config"
	appHTTP "github.com/genbaflow/genba-backend-go/internal/handler/http"
	"github.com/genbaflow/genba-backend-go/internal/parser"
	"github.com/genbaflow/genba-backend-go/internal/pkg/database"
	"github.com/genbaflow/genba-backend-go/internal/repository/postgresql"
	ingestService "github.com/genbaflow/genba-backend-go/internal/service/ingest"
	payrollService "github.com/genbaflow/genba-backend-go/internal/service/payroll"
	reviewService "github.com/genbaflow/genba-backend-go/internal/service/review"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	schema, err := config.LoadSchema(cfg.App.SchemaFile)
	if err != nil {
		fmt.Println("Error loading schema mapping:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if err := database.VerifySchema(context.Background(), db, schema); err != nil {
		fmt.Println("Schema verification failed:", err)
		return
	}

	workRepo := postgresql.NewWorkRecordRepository(db)
	pendingRepo := postgresql.NewPendingReviewRepository(db)
	approvedRepo := postgresql.NewApprovedRepository(db)
	rejectedRepo := postgresql.NewRejectedRepository(db)
	messageLogRepo := postgresql.NewMessageLogRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	messageParser := parser.New(cfg.Ingest.FutureDayLimit, cfg.Location())

	ingestSvc := ingestService.NewIngestService(
		messageParser,
		workRepo,
		pendingRepo,
		messageLogRepo,
		cfg.Ingest.DedupWindow,
		cfg.Location(),
	)
	reviewSvc := reviewService.NewReviewService(workRepo, pendingRepo, approvedRepo, rejectedRepo)
	exportSvc := payrollService.NewExportService(approvedRepo, workerRepo, payrollRepo)

	webhookHandler := appHTTP.NewWebhookHandler(ingestSvc, cfg.Ingest.ChannelSecret)
	reviewHandler := appHTTP.NewReviewHandler(reviewSvc)
	payrollHandler := appHTTP.NewPayrollHandler(exportSvc, payrollRepo)

	router := appHTTP.NewRouter(cfg.App.Env, webhookHandler, reviewHandler, payrollHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
