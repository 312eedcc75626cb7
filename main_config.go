package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/pkg/errors"

	"github.com/alphagov/paas-nlu-usage/platform"
	"github.com/alphagov/paas-nlu-usage/usagepoller"
)

type Config struct {
	platform.Config
	AppRootDir string
	Logger     lager.Logger
	Poller     usagepoller.Config
	SigningKey string
	ServerPort int
	ServerHost string
	ListenAddr string
}

func (cfg Config) ConfigFile() (string, error) {
	root := cfg.AppRootDir
	p := filepath.Join(root, "config.json")
	if _, err := os.Stat(p); os.IsNotExist(err) {
		return "", fmt.Errorf("%s does not exist", p)
	}
	return p, nil
}

func NewConfigFromEnv() (cfg Config, err error) {
	platformConfig, err := platform.NewConfigFromEnv()
	if err != nil {
		return Config{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.New(fmt.Sprintf("%v", r))
		}
	}()

	rootDir := os.Getenv("APP_ROOT")
	if rootDir == "" {
		rootDir = getwd()
	}

	cfg = Config{
		Config:     platformConfig,
		AppRootDir: rootDir,
		Logger:     lager.NewLogger("default"),
		Poller: usagepoller.Config{
			Schedule:        platform.GetEnvWithDefaultDuration("USAGE_POLL_SCHEDULE", usagepoller.DefaultSchedule),
			InitialWaitTime: platform.GetEnvWithDefaultDuration("USAGE_POLL_INITIAL_WAIT_TIME", 0),
		},
		SigningKey: os.Getenv("API_SIGNING_KEY"),
		ServerPort: platform.GetEnvWithDefaultInt("PORT", 8881),
		ServerHost: platform.GetEnvWithDefaultString("LISTEN_HOST", ""),
	}
	cfg.ListenAddr = fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)
	return cfg, nil
}

func getDefaultLogger() lager.Logger {
	logger := lager.NewLogger("paas-nlu-usage")
	logLevel := lager.INFO
	if strings.ToLower(os.Getenv("LOG_LEVEL")) == "debug" {
		logLevel = lager.DEBUG
	}
	logger.RegisterSink(lager.NewWriterSink(os.Stdout, logLevel))

	return logger
}

func getwd() string {
	pwd := os.Getenv("PWD")
	if pwd == "" {
		pwd, _ = os.Getwd()
	}
	return pwd
}
