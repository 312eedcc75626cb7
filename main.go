package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"code.cloudfoundry.org/lager"
)

func Main(ctx context.Context, logger lager.Logger, mode string) error {
	logger.Info("starting", lager.Data{"mode": mode})

	cfg, err := NewConfigFromEnv()
	if err != nil {
		return err
	}
	cfg.Logger = logger

	app, err := New(ctx, cfg)
	if err != nil {
		return err
	}

	switch mode {
	case "api":
		if err := app.StartAPIServer(); err != nil {
			return err
		}
	case "poller":
		if err := app.StartUsagePoller(); err != nil {
			return err
		}
	case "all":
		if err := app.StartAPIServer(); err != nil {
			return err
		}
		if err := app.StartUsagePoller(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown mode %q: expected api, poller or all", mode)
	}

	return app.Wait()
}

func main() {
	ctx, shutdown := context.WithCancel(context.Background())
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Reset(syscall.SIGINT, syscall.SIGTERM)
		<-signalChan
		shutdown()
	}()

	mode := "all"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	logger := getDefaultLogger()
	if err := Main(ctx, logger, mode); err != nil {
		logger.Error("main", err)
		os.Exit(1)
	}
	logger.Info("shutdown")
}
