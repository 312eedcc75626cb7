package main

import (
	"context"
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/alphagov/paas-nlu-usage/apiserver"
	"github.com/alphagov/paas-nlu-usage/nluusage"
	"github.com/alphagov/paas-nlu-usage/platform"
	"github.com/alphagov/paas-nlu-usage/usagepoller"
)

type App struct {
	wg       sync.WaitGroup
	ctx      context.Context
	client   *nluusage.Client
	logger   lager.Logger
	cfg      Config
	Shutdown context.CancelFunc
}

func (app *App) StartAPIServer() error {
	name := "api"
	logger := app.logger.Session(name)
	apiServer := apiserver.New(apiserver.Config{
		Client:     app.client,
		SigningKey: app.cfg.SigningKey,
		Logger:     logger,
	})
	return app.start(name, logger, func() error {
		return apiserver.ListenAndServe(
			app.ctx,
			logger,
			apiServer,
			app.cfg.ListenAddr,
		)
	})
}

func (app *App) StartUsagePoller() error {
	name := "usage-poller"
	logger := app.logger.Session(name)
	poller, err := usagepoller.New(usagepoller.Config{
		Logger:          logger,
		Client:          app.client,
		Schedule:        app.cfg.Poller.Schedule,
		InitialWaitTime: app.cfg.Poller.InitialWaitTime,
		Registerer:      app.cfg.Poller.Registerer,
	})
	if err != nil {
		return err
	}
	return app.start(name, logger, func() error {
		return poller.Run(app.ctx)
	})
}

func (app *App) start(name string, logger lager.Logger, fn func() error) error {
	app.wg.Add(1)
	go func() {
		logger.Info("starting")
		defer logger.Info("stopped")
		defer app.wg.Done()
		defer app.Shutdown()
		if err := fn(); err != nil {
			logger.Error("stop-with-error", err)
		}
	}()
	return nil
}

func (app *App) Wait() error {
	app.wg.Wait()
	return nil
}

// Client is the usage client shared by every component of the app
func (app *App) Client() *nluusage.Client {
	return app.client
}

func New(ctx context.Context, cfg Config) (*App, error) {
	if cfg.Logger == nil {
		cfg.Logger = lager.NewLogger("app")
	}

	ctx, shutdown := context.WithCancel(ctx)

	go func() {
		defer shutdown()
		<-ctx.Done()
		cfg.Logger.Info("stopping")
	}()

	client, err := newUsageClient(ctx, cfg)
	if err != nil {
		shutdown()
		return nil, err
	}

	app := &App{
		cfg:      cfg,
		ctx:      ctx,
		Shutdown: shutdown,
		client:   client,
		logger:   cfg.Logger,
	}

	return app, nil
}

func newUsageClient(ctx context.Context, cfg Config) (*nluusage.Client, error) {
	configFile, err := cfg.ConfigFile()
	if err != nil {
		return nil, err
	}
	return platform.NewUsageClient(ctx, cfg.Logger, cfg.Config, configFile)
}
