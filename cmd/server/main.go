package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/adapters/binance"
	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/adapters/grpc"
	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/adapters/parser"
	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/adapters/rest"
	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/config"
	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/domain"
	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/pkg/grpcserver"
	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/pkg/httpserver"
	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/pkg/logger"
	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/usecase"
	"github.com/gin-gonic/gin"
)

const serviceName = "p2p-price-proxy"

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("error", false)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	profile, err := usecase.ProfileByName(cfg.PriceProfile)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid price profile")
	}
	if cfg.DefaultTrade != "" {
		profile.DefaultTradeType = domain.TradeType(cfg.DefaultTrade)
	}

	// Adapters (infrastructure)
	offersAdapter := binance.NewClient(binance.Config{
		URL:       cfg.UpstreamURL,
		Timeout:   cfg.UpstreamTimeout,
		Countries: cfg.Countries,
	}, log)
	parserAdapter := parser.NewPriceParser()

	// Application service (use cases)
	priceSvc := usecase.NewPriceService(offersAdapter, parserAdapter, profile, log)

	// HTTP API (interface adapter)
	router := rest.NewRouter(&rest.RouterConfig{
		PriceHandler:  rest.NewPriceHandler(priceSvc, log),
		HealthHandler: rest.NewHealthHandler(priceSvc, serviceName),
		Logger:        log,
	})
	httpSrv := httpserver.New(cfg.HTTPAddr, router, log)

	// Optional gRPC health listener
	var grpcSrv *grpcserver.Server
	if cfg.GRPCAddr != "" {
		grpcSrv = grpcserver.New(cfg.GRPCAddr, log)
		grpc.RegisterPriceService(grpcSrv.Server, grpcSrv.Health, priceSvc, serviceName)
	}

	active := priceSvc.Profile()
	log.Info().
		Str("profile", active.Name).
		Str("default_trade_type", string(active.DefaultTradeType)).
		Bool("amount_filter", active.AmountFilter).
		Msg("starting " + serviceName)

	// Start
	go func() {
		if err := httpSrv.Start(); err != nil {
			log.Fatal().Err(err).Msg("HTTP serve error")
		}
	}()
	if grpcSrv != nil {
		go func() {
			if err := grpcSrv.Start(); err != nil {
				log.Fatal().Err(err).Msg("gRPC serve error")
			}
		}()
	}

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	log.Info().Msg("Shutting down...")

	if grpcSrv != nil {
		grpcSrv.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP shutdown did not complete")
	}
}
