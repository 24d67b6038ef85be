package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/devquest/banking-ledger-cache/internal/bank"
	rediscache "github.com/devquest/banking-ledger-cache/internal/cache/redis"
	"github.com/devquest/banking-ledger-cache/internal/config"
	"github.com/devquest/banking-ledger-cache/internal/events/kafka"
	"github.com/devquest/banking-ledger-cache/internal/interfaces"
	"github.com/devquest/banking-ledger-cache/internal/models"
	"github.com/devquest/banking-ledger-cache/internal/storage/postgres"
)

// headerResolver resolves the account key from a request header set by
// the fronting auth layer. Authentication itself is outside this
// service; the key is an opaque precondition.
type headerResolver struct {
	header string
}

func (h headerResolver) Resolve(r *http.Request) (string, error) {
	key := r.Header.Get(h.header)
	if key == "" {
		return "", errors.New("missing account key")
	}
	return key, nil
}

var _ interfaces.AccountResolver = headerResolver{}

func main() {
	configPath := flag.String("config", "configs/server.yaml", "path to config file")
	flag.Parse()

	// .env is optional, real deployments set the environment directly
	godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	pingCancel()
	if err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database",
		"host", cfg.Database.Host,
		"database", cfg.Database.Name,
	)

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	store := postgres.NewPostgresLedgerStore(db)
	balanceCache := rediscache.NewBalanceCache(redisClient)

	engine := bank.NewEngine(store, balanceCache, logger)
	reader := bank.NewReader(store, balanceCache, logger)

	if len(cfg.Kafka.Brokers) > 0 {
		publisher := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer publisher.Close()
		engine.SetEventPublisher(publisher)
		logger.Info("event publishing enabled",
			"brokers", cfg.Kafka.Brokers,
			"topic", cfg.Kafka.Topic,
		)
	}

	var resolver interfaces.AccountResolver = headerResolver{header: "X-Account-Key"}

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/deposits", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		accountKey, err := resolver.Resolve(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		amount, ok := decodeAmount(w, r)
		if !ok {
			return
		}

		if err := engine.Credit(r.Context(), accountKey, amount); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("/payments", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		accountKey, err := resolver.Resolve(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		amount, ok := decodeAmount(w, r)
		if !ok {
			return
		}

		if err := engine.Debit(r.Context(), accountKey, amount); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("/balance", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		accountKey, err := resolver.Resolve(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		statement, err := reader.Query(r.Context(), accountKey)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(statement)
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: mux,
	}

	go func() {
		logger.Info("starting server", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("received shutdown signal", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
	logger.Info("server exited")
}

// decodeAmount parses the request body. A missing value decodes to a
// nil pointer, which maps to the zero amount the engine rejects.
func decodeAmount(w http.ResponseWriter, r *http.Request) (decimal.Decimal, bool) {
	var req struct {
		Value *decimal.Decimal `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return decimal.Decimal{}, false
	}
	if req.Value == nil {
		return decimal.Zero, true
	}
	return *req.Value, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrAccountNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
