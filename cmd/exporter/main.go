package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/scriptwatch/exporter.git/internal/cfg"
	"github.com/scriptwatch/exporter.git/internal/collector"
	"github.com/scriptwatch/exporter.git/internal/customerrors"
	"github.com/scriptwatch/exporter.git/internal/logger"
	"github.com/scriptwatch/exporter.git/internal/parser"
	"github.com/scriptwatch/exporter.git/internal/registry"
	"github.com/scriptwatch/exporter.git/internal/runner"
	"github.com/scriptwatch/exporter.git/internal/selfstats"
	"github.com/scriptwatch/exporter.git/internal/server"
)

func loadConfig() (*cfg.Config, error) {
	config, err := cfg.NewConfig()
	if err != nil {
		return nil, err
	}

	script := flag.String("script", config.Script, "Shell command or script producing metric lines")
	port := flag.Int("port", config.Port, "HTTP listen port")
	interval := flag.Int("interval", int(config.ScrapeInterval.Seconds()), "Collection interval in seconds")
	timeout := flag.Int("timeout", int(config.CommandTimeout.Seconds()), "Script execution timeout in seconds, 0 disables")

	flag.Parse()

	config.Script = *script
	config.Port = *port
	config.ScrapeInterval = time.Duration(*interval) * time.Second
	config.CommandTimeout = time.Duration(*timeout) * time.Second

	if config.Script == "" {
		return nil, customerrors.ErrScriptRequired
	}

	return config, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	config, err := loadConfig()
	if err != nil {
		log.Fatal(err, " Load config")
	}

	lg, err := logger.Initialize(config.Logger)
	if err != nil {
		log.Fatal(err, " Init logger")
	}
	ctx = lg.Zerolog().WithContext(ctx)

	reg := registry.New()

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(reg)

	if self, err := selfstats.New(); err == nil {
		promRegistry.MustRegister(self)
	} else {
		logger.Log.Warn().Err(err).Msg("self stats unavailable")
	}

	coll := collector.New(
		runner.New(config.Script, config.CommandTimeout, logger.Log),
		parser.New(logger.Log),
		reg,
		config.ScrapeInterval,
		logger.Log,
	)

	srv := server.NewServer(config.ListenAddr(), reg, promRegistry)
	srv.Run(ctx, group)

	group.Go(func() error {
		return coll.Run(ctx)
	})

	group.Go(func() error {
		<-ctx.Done()

		return srv.Shutdown(ctx)
	})

	group.Wait()
}
