package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"code.cloudfoundry.org/lager"

	"github.com/alphagov/paas-nlu-usage/nluusage"
	"github.com/alphagov/paas-nlu-usage/platform"
)

/*
CF_USERNAME=me@example.com CF_PASSWORD=... \
CF_ORGANIZATION_NAME=my-org CF_SPACE_NAME=dev NLU_INSTANCE_NAME=my-nlu \
go run ./cmd/nlu-usage estimate --features 2 --plan standard "some text"
*/

func newPlatformClient(logger lager.Logger) clientFactory {
	return func(ctx context.Context, configFile string) (nluusage.UsageClient, error) {
		cfg, err := platform.NewConfigFromEnv()
		if err != nil {
			return nil, err
		}
		return platform.NewUsageClient(ctx, logger, cfg, configFile)
	}
}

func newLogger() lager.Logger {
	logger := lager.NewLogger("nlu-usage")
	logLevel := lager.ERROR
	if strings.ToLower(os.Getenv("LOG_LEVEL")) == "debug" {
		logLevel = lager.DEBUG
	}
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, logLevel))
	return logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(newPlatformClient(newLogger()))
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
