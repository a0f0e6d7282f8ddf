package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/conversation-service/internal/client/centrifugo"
	"github.com/s21platform/conversation-service/internal/config"
	"github.com/s21platform/conversation-service/internal/databus/events"
	api "github.com/s21platform/conversation-service/internal/generated"
	"github.com/s21platform/conversation-service/internal/infra"
	"github.com/s21platform/conversation-service/internal/model"
	"github.com/s21platform/conversation-service/internal/pkg/jwt"
	"github.com/s21platform/conversation-service/internal/pkg/ratelimit"
	"github.com/s21platform/conversation-service/internal/pkg/tx"
	"github.com/s21platform/conversation-service/internal/pkg/validator"
	"github.com/s21platform/conversation-service/internal/realtime"
	"github.com/s21platform/conversation-service/internal/repository/memory"
	db "github.com/s21platform/conversation-service/internal/repository/postgres"
	"github.com/s21platform/conversation-service/internal/rest"
	"github.com/s21platform/conversation-service/internal/service"
)

type repository interface {
	service.Repository
	Close()
}

// throttledTyper applies the typing limiter to signals arriving over the websocket.
type throttledTyper struct {
	service *service.Service
	limiter *ratelimit.Pool
}

func (t throttledTyper) Typing(ctx context.Context, identity model.Identity, conversationID string, isTyping bool) error {
	if isTyping && !t.limiter.Allow(identity.UserID) {
		return model.ErrRateLimited
	}
	return t.service.Typing(ctx, identity, conversationID, isTyping)
}

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var dbRepo repository
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		dbRepo = memory.New()
	default:
		pg := db.New(cfg)
		if err := pg.Migrate(ctx); err != nil {
			logger.Error(fmt.Sprintf("failed to migrate: %v", err))
			os.Exit(1)
		}
		dbRepo = pg
	}
	defer dbRepo.Close()

	g, gCtx := errgroup.WithContext(ctx)

	var relay realtime.Relay
	var redisRelay *realtime.RedisRelay
	if cfg.Redis.URL != "" {
		redisClient, err := realtime.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to connect redis: %v", err))
			os.Exit(1)
		}
		defer redisClient.Close() //nolint:errcheck // .

		origin := cfg.Realtime.InstanceName
		if origin == "" {
			origin = uuid.NewString()
		}
		redisRelay = realtime.NewRedisRelay(redisClient, cfg.Redis.Channel, origin)
		relay = redisRelay
	}
	hub := realtime.NewHub(relay)

	if redisRelay != nil {
		g.Go(func() error {
			return redisRelay.Run(gCtx, hub.Deliver)
		})
	}

	publishers := []service.Publisher{hub}

	if cfg.Centrifuge.BaseURL != "" {
		centrifugeClient := centrifugo.New(cfg)
		defer centrifugeClient.Close()
		publishers = append(publishers, centrifugeClient)
	}

	if cfg.Kafka.Enabled() && cfg.Kafka.EventsTopic != "" {
		producer := events.New(cfg)
		defer producer.Close()
		publishers = append(publishers, producer)
	}

	conversationService := service.New(dbRepo, publishers...)

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Realtime.JWTSecret, cfg.Realtime.TokenTTL)
	sendLimiter := ratelimit.New(cfg.RateLimit.SendRPS, cfg.RateLimit.SendBurst)
	typingLimiter := ratelimit.New(cfg.RateLimit.TypingRPS, cfg.RateLimit.TypingBurst)

	handler := rest.New(conversationService, vldtr, jwtGenerator, sendLimiter, typingLimiter)
	wsHandler := realtime.NewHandler(hub, jwtGenerator, throttledTyper{service: conversationService, limiter: typingLimiter}, cfg.Realtime)

	router := chi.NewRouter()
	router.Use(infra.MetricsHTTP)
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(infra.AuthInterceptorHTTP)
		r.Use(func(next http.Handler) http.Handler {
			return tx.TxMiddlewareHTTP(dbRepo)(next)
		})
		api.HandlerFromMux(handler, r)
	})

	httpServer := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	wsRouter := chi.NewRouter()
	wsRouter.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	wsRouter.Handle("/ws", wsHandler)
	wsServer := &http.Server{
		Handler:           wsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		os.Exit(1)
	}

	m := cmux.New(listener)

	wsListener := m.Match(cmux.HTTP1HeaderField("Upgrade", "websocket"))
	httpListener := m.Match(cmux.HTTP1Fast())

	g.Go(func() error {
		if err := wsServer.Serve(wsListener); err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, cmux.ErrListenerClosed) {
			return fmt.Errorf("websocket server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, cmux.ErrListenerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := m.Serve(); err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = wsServer.Shutdown(shutdownCtx)
		m.Close()
		return nil
	})

	logger.Info(fmt.Sprintf("conversation service listening on :%s", cfg.Service.Port))

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
