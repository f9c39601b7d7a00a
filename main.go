package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"shopfloor/common"
	"shopfloor/config"
	"shopfloor/domain/overview"
	"shopfloor/domain/workorder"
	"shopfloor/event"
	"shopfloor/fixtures"
	"shopfloor/infra/metrics"
	"shopfloor/infra/tracing"
	"shopfloor/servehttp"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.ParseServiceConfigFromEnv()
	if err != nil {
		logrus.Fatalf("parse service config failed: %v", err)
	}
	common.SetServiceName(cfg.ServiceName)
	if err := common.ConfigureLogger(cfg.LogLevel, cfg.LogFormat); err != nil {
		logrus.Fatalf("configure logger failed: %v", err)
	}
	logrus.Info("service start")

	closer, err := tracing.InitGlobalTracer(cfg.ServiceName)
	if err != nil {
		logrus.Fatalf("init tracer failed: %v", err)
	}
	defer closer.Close()

	doc, err := fixtures.Load(cfg.FixtureFile)
	if err != nil {
		logrus.Fatalf("load fixtures failed: %v", err)
	}

	bus := event.NewBus()
	m := metrics.New(cfg.ServiceName)
	bus.Subscribe(m.HandleEvent)

	store, err := workorder.NewStore(bus, doc.WorkOrders...)
	if err != nil {
		logrus.Fatalf("seed work orders failed: %v", err)
	}
	logrus.Infof("%d work orders seeded", store.Len())

	engine := servehttp.NewEngine(&servehttp.Components{
		WorkOrders:     store,
		Directory:      doc.Directory(),
		Overview:       overview.NewService(store, bus, cfg.OverviewCacheTTL),
		Metrics:        m,
		WriteRateLimit: cfg.WriteRateLimit,
		WriteRateBurst: cfg.WriteRateBurst,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := servehttp.Serve(ctx, &http.Server{Addr: cfg.ListenAddr, Handler: engine}); err != nil {
		logrus.Fatalf("http server failed: %v", err)
	}
	logrus.Info("[QUIT] service exiting")
}
