// Command server runs the book-swapping registry: the HTTP API, the audit
// worker, and the store backends selected by configuration.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"bookswap/internal/audit"
	"bookswap/internal/books"
	bookshandler "bookswap/internal/books/handler"
	"bookswap/internal/feedback"
	feedbackhandler "bookswap/internal/feedback/handler"
	httpapi "bookswap/internal/http"
	"bookswap/internal/platform/auth"
	"bookswap/internal/platform/config"
	"bookswap/internal/platform/httpserver"
	"bookswap/internal/platform/logger"
	"bookswap/internal/platform/metrics"
	platformredis "bookswap/internal/platform/redis"
	"bookswap/internal/rankings"
	rankingshandler "bookswap/internal/rankings/handler"
	"bookswap/internal/swaps"
	swapshandler "bookswap/internal/swaps/handler"
	"bookswap/internal/users"
	usershandler "bookswap/internal/users/handler"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Local development convenience; the file is absent in production.
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

type stores struct {
	users    users.Store
	books    books.Store
	swaps    swaps.Store
	feedback feedback.Store
	health   func(r *http.Request) error
	close    func() error
}

func buildStores(cfg config.Server) (*stores, error) {
	if cfg.Store == config.StoreRedis {
		client, err := platformredis.New(cfg.Redis)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, errors.New("BOOKSWAP_STORE=redis requires REDIS_URL")
		}
		return &stores{
			users:    users.NewRedisStore(client.Client),
			books:    books.NewRedisStore(client.Client),
			swaps:    swaps.NewRedisStore(client.Client),
			feedback: feedback.NewRedisStore(client.Client),
			health:   func(r *http.Request) error { return client.Health(r.Context()) },
			close:    client.Close,
		}, nil
	}
	return &stores{
		users:    users.NewInMemoryStore(),
		books:    books.NewInMemoryStore(),
		swaps:    swaps.NewInMemoryStore(),
		feedback: feedback.NewInMemoryStore(),
		close:    func() error { return nil },
	}, nil
}

func run(cfg config.Server, log *slog.Logger) error {
	st, err := buildStores(cfg)
	if err != nil {
		return err
	}
	defer st.close()

	m := metrics.New()

	auditInbox := make(chan audit.Event, 256)
	publisher := audit.NewPublisher(auditInbox)
	auditWorker := audit.NewWorker(audit.NewInMemoryStore(), auditInbox)

	usersService := users.NewService(st.users,
		users.WithLogger(log),
		users.WithMetrics(m),
		users.WithAuditPublisher(publisher),
	)
	booksService := books.NewService(st.books, usersService,
		books.WithLogger(log),
		books.WithMetrics(m),
		books.WithAuditPublisher(publisher),
	)
	swapsService := swaps.NewService(st.swaps, usersService, booksService,
		swaps.WithLogger(log),
		swaps.WithMetrics(m),
		swaps.WithAuditPublisher(publisher),
	)
	feedbackService := feedback.NewService(st.feedback, usersService, swapsService,
		feedback.WithLogger(log),
		feedback.WithMetrics(m),
		feedback.WithAuditPublisher(publisher),
	)
	rankingsService := rankings.NewService(st.users, st.books, st.swaps,
		rankings.WithLogger(log),
	)

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:  log,
		Metrics: m,
		Auth:    auth.NewJWTValidator(cfg.JWTSigningKey),
		Health:  st.health,
		Handlers: []httpapi.Registrar{
			usershandler.New(usersService, log),
			bookshandler.New(booksService, log),
			swapshandler.New(swapsService, log),
			feedbackhandler.New(feedbackService, log),
			rankingshandler.New(rankingsService, log),
		},
	})

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting bookswap registry", "addr", cfg.Addr, "store", string(cfg.Store))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return auditWorker.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
