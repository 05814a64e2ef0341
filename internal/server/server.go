package server

import (
	"context"
	"errors"
	"finboard/internal/api"
	"finboard/internal/auth"
	"finboard/internal/authstate"
	"finboard/internal/config"
	"finboard/internal/distributed"
	"finboard/internal/jobs"
	"finboard/internal/linking"
	"finboard/internal/marketdata"
	"finboard/internal/metrics"
	"finboard/internal/middlewares"
	"finboard/internal/swr"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	appCtx      *middlewares.AppContext
	httpServer  *http.Server
	debugServer *http.Server
	market      *marketdata.Service
	election    *distributed.Election
	jobManager  *jobs.JobManager
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	sessionManager, err := auth.NewSessionManager(logger, cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	apiClient := api.NewClient(cfg, logger)

	var linkProvider middlewares.LinkProvider
	if cfg.Linking != nil && cfg.Linking.Enabled {
		linkProvider, err = linking.NewProvider(ctx, cfg.Linking)
		if err != nil {
			cancel()
			return nil, err
		}
	}

	market, err := setupMarketService(cfg, logger)
	if err != nil {
		cancel()
		return nil, err
	}

	authState := authstate.NewRegistry(apiClient.FetchCurrentUser, logger, swr.Options{
		RevalidateOnMount: true,
		RevalidateIfStale: true,
		DedupingInterval:  cfg.SWR.DedupingInterval,
	})

	var election *distributed.Election
	if cfg.Distributed != nil && cfg.Distributed.Enabled {
		var client *redis.Client

		if cfg.Redis.Sentinel != nil {
			logger.Info("connecting to redis via sentinel",
				"master", cfg.Redis.Sentinel.MasterName,
				"sentinels", cfg.Redis.Sentinel.SentinelAddresses)

			client = redis.NewFailoverClient(&redis.FailoverOptions{
				MasterName:       cfg.Redis.Sentinel.MasterName,
				SentinelAddrs:    cfg.Redis.Sentinel.SentinelAddresses,
				SentinelPassword: cfg.Redis.Sentinel.SentinelPassword,
				Password:         cfg.Redis.Password,
				DB:               cfg.Redis.LeaderIndex,
				MinIdleConns:     2,
			})
		} else {
			client = redis.NewClient(&redis.Options{
				Addr:         cfg.Redis.Address,
				Password:     cfg.Redis.Password,
				DB:           cfg.Redis.LeaderIndex,
				MinIdleConns: 2,
			})
		}

		if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
			collector := redisprometheus.NewCollector(metrics.Namespace, "election", client)
			if err := prometheus.Register(collector); err != nil {
				logger.Debug("failed to register redis election collector: already registered", "error", err)
			}
		}

		hostname := os.Getenv("HOSTNAME")
		if hostname == "" {
			hostname = uuid.New().String()
		}

		election = &distributed.Election{
			Redis:      client,
			InstanceID: hostname,
			TTL:        cfg.Distributed.TTL,
			Logger:     logger,
		}
	}

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, sessionManager, apiClient, linkProvider, market, authState)

	jobManager := jobs.NewJobManager(election, logger)

	if len(cfg.Market.Symbols) > 0 {
		interval := calculateRefreshInterval(cfg)
		jobManager.Register(jobs.NewMarketRefreshJob(market, interval, logger))
	}

	router := setupRouter(appCtx)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugRouter := setupDebugRouter()
		debugServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler: debugRouter,
		}
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		appCtx:      appCtx,
		httpServer:  server,
		debugServer: debugServer,
		market:      market,
		election:    election,
		jobManager:  jobManager,
		cancel:      cancel,
	}, nil
}

func (s *Server) Start() error {
	if s.election != nil {
		go s.election.Start(s.appCtx)
	}

	s.jobManager.Start(s.appCtx)

	go func() {
		if s.cfg.Distributed != nil && s.cfg.Distributed.Enabled {
			s.logger.Info("Server Started", "port", s.cfg.Server.Port, "instance", s.election.InstanceID)
		} else {
			s.logger.Info("Server Started", "port", s.cfg.Server.Port)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.cfg.Server.Debug != nil && s.cfg.Server.Debug.Enabled {
		go func() {
			s.logger.Info("Metrics server starting", "address", fmt.Sprintf("%s:%d", s.cfg.Server.Debug.Host, s.cfg.Server.Debug.Port))
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Metrics server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("Context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("Shutting Down Server")

	s.jobManager.Shutdown(shutdownCtx)

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil && s.cfg.Server.Debug.Enabled {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	s.logger.Info("Server Exited")
	return nil
}

func setupMarketService(cfg *config.Config, logger *slog.Logger) (*marketdata.Service, error) {
	cache, err := marketdata.NewCacheProvider(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create market cache provider: %w", err)
	}

	client := marketdata.NewClient(&cfg.Market)
	return marketdata.NewService(client, cache, &cfg.Market, logger), nil
}

// calculateRefreshInterval keys the background refresh off the shortest
// configured TTL, with a floor so a tiny TTL cannot hammer the vendor.
func calculateRefreshInterval(cfg *config.Config) time.Duration {
	minTTL := cfg.Market.FallbackRefreshInterval

	if cfg.Market.QuoteTTL > 0 && (minTTL <= 0 || cfg.Market.QuoteTTL < minTTL) {
		minTTL = cfg.Market.QuoteTTL
	}
	if cfg.Market.NewsTTL > 0 && cfg.Market.NewsTTL < minTTL {
		minTTL = cfg.Market.NewsTTL
	}

	if minTTL < time.Second*30 {
		minTTL = time.Second * 30
	}
	return minTTL
}
