package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Thao1971/bud-advisors-app-sub000/internal/admin"
	"github.com/Thao1971/bud-advisors-app-sub000/internal/advisor"
	"github.com/Thao1971/bud-advisors-app-sub000/internal/broker"
	"github.com/Thao1971/bud-advisors-app-sub000/internal/config"
	"github.com/Thao1971/bud-advisors-app-sub000/internal/db"
	"github.com/Thao1971/bud-advisors-app-sub000/internal/handlers"
	"github.com/Thao1971/bud-advisors-app-sub000/internal/ingest"
	"github.com/Thao1971/bud-advisors-app-sub000/internal/repository"
	"github.com/Thao1971/bud-advisors-app-sub000/internal/store"
)

func main() {
	cfg := config.Load()

	_ = config.InitLogger(cfg.LogLevel)
	slog.Info("starting", "port", cfg.Port, "mongo_db", cfg.MongoDB)

	// admin one-off tasks run and exit without serving HTTP
	task := flag.String("task", "", "admin task: seed")
	flag.Parse()
	if *task != "" {
		switch *task {
		case "seed":
			client, err := db.NewMongoClient(cfg.MongoURI)
			if err != nil {
				slog.Error("mongo_connect_error", "err", err)
				os.Exit(1)
			}
			defer func() { _ = client.Disconnect(context.Background()) }()

			repo := repository.NewCompanyRepository(client.Database(cfg.MongoDB))
			if err := admin.SeedCompanies(context.Background(), repo, slog.Default()); err != nil {
				slog.Error("seed_failed", "err", err)
				os.Exit(1)
			}
			slog.Info("seed_done")
			return
		default:
			slog.Error("unknown_admin_task", "task", *task)
			os.Exit(2)
		}
	}

	client, err := db.NewMongoClient(cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect error: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	pub, err := broker.NewPublisher(cfg.RabbitURI, cfg.RabbitQueue)
	if err != nil {
		log.Fatalf("rabbitmq connect error: %v", err)
	}
	defer pub.Close()

	repo := repository.NewCompanyRepository(client.Database(cfg.MongoDB))
	if err := repo.EnsureIndexes(context.Background()); err != nil {
		slog.Warn("ensure_indexes_error", "err", err)
	}

	sink := store.NewSink(repo, pub, slog.Default())
	if err := sink.Prime(context.Background()); err != nil {
		log.Fatalf("initial snapshot error: %v", err)
	}

	var provider advisor.Provider
	if cfg.GeminiAPIKey != "" {
		provider = &advisor.GeminiProvider{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel}
	}
	adv := advisor.New(provider, slog.Default())

	svc := ingest.NewService(sink, slog.Default())
	h := handlers.NewCompanyHandler(sink, svc, adv)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.Health)
	mux.HandleFunc("/api/ingest", h.Ingest)
	mux.HandleFunc("/api/summary", h.Summary)
	mux.HandleFunc("/api/advisor", h.Advise)
	mux.HandleFunc("/api/companies", h.Companies)
	mux.HandleFunc("/api/companies/", h.CompanyByID)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           logMiddleware(mux),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown error", "err", err)
	}
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("http_request",
			"method", r.Method, "path", r.URL.Path,
			"duration", fmtDuration(time.Since(start)),
		)
	})
}

func fmtDuration(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}
