package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	appEnv string,
	webhookHandler WebhookHandler,
	reviewHandler ReviewHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "genba-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Line-Signature"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Post("/webhook", webhookHandler.Receive)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/reviews", func(r chi.Router) {
			r.Post("/sync", reviewHandler.Sync)
			r.Post("/approve", reviewHandler.ApproveAll)
			r.Post("/reject", reviewHandler.RejectAll)
			r.Post("/reset", reviewHandler.ResetAll)

			r.Get("/pending", reviewHandler.ListPending)
			r.Get("/approved", reviewHandler.ListApproved)
			r.Get("/rejected", reviewHandler.ListRejected)

			r.Put("/pending/{key}/overrides", reviewHandler.SetOverrides)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Post("/export", payrollHandler.Export)
			r.Get("/", payrollHandler.List)
		})
	})

	return r
}
