// Package platform builds a usage client from the environment. It is shared
// by the service and the command line tool so both talk to the same
// identity, cloud controller and metering endpoints.
package platform

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/pkg/errors"

	"github.com/alphagov/paas-nlu-usage/metering"
	"github.com/alphagov/paas-nlu-usage/nluusage"
	"github.com/alphagov/paas-nlu-usage/orgresolver"
	"github.com/alphagov/paas-nlu-usage/pricing"
	"github.com/alphagov/paas-nlu-usage/uaa"
)

const (
	DefaultCFAPIAddress       = "https://api.ng.bluemix.net"
	DefaultMeteringAPIAddress = "https://metering-reporting.ng.bluemix.net"
	DefaultServiceName        = "natural-language-understanding"
	DefaultUserAgent          = "paas-nlu-usage"
	DefaultHTTPTimeout        = 30 * time.Second
)

type Config struct {
	Usage           nluusage.Config
	UAA             uaa.Config
	CloudController orgresolver.Config
	Metering        metering.Config
	HTTPTimeout     time.Duration
}

// NewConfigFromEnv reads the credentials, instance and endpoints of the
// usage client from the environment
func NewConfigFromEnv() (cfg Config, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(fmt.Sprintf("%v", r))
		}
	}()

	httpTimeout := GetEnvWithDefaultDuration("HTTP_TIMEOUT", DefaultHTTPTimeout)
	skipSSLValidation := GetEnvWithDefaultBool("CF_SKIP_SSL_VALIDATION", false)
	httpClient := &http.Client{
		Timeout: httpTimeout,
		Transport: &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: skipSSLValidation},
		},
	}

	cfg = Config{
		Usage: nluusage.Config{
			Username:         os.Getenv("CF_USERNAME"),
			Password:         os.Getenv("CF_PASSWORD"),
			OrganizationName: os.Getenv("CF_ORGANIZATION_NAME"),
			SpaceName:        os.Getenv("CF_SPACE_NAME"),
			ServiceName:      GetEnvWithDefaultString("NLU_SERVICE_NAME", DefaultServiceName),
			InstanceName:     os.Getenv("NLU_INSTANCE_NAME"),
			Region:           GetEnvWithDefaultString("CF_REGION", nluusage.DefaultRegion),
		},
		UAA: uaa.Config{
			TokenURL:   os.Getenv("UAA_TOKEN_URL"),
			ClientID:   GetEnvWithDefaultString("UAA_CLIENT_ID", uaa.DefaultClientID),
			HTTPClient: httpClient,
		},
		CloudController: orgresolver.Config{
			APIAddress:        GetEnvWithDefaultString("CF_API_ADDRESS", DefaultCFAPIAddress),
			SkipSSLValidation: skipSSLValidation,
			UserAgent:         GetEnvWithDefaultString("CF_USER_AGENT", DefaultUserAgent),
			Timeout:           httpTimeout,
		},
		Metering: metering.Config{
			APIAddress: GetEnvWithDefaultString("METERING_API_ADDRESS", DefaultMeteringAPIAddress),
			HTTPClient: httpClient,
		},
		HTTPTimeout: httpTimeout,
	}
	return cfg, nil
}

// NewUsageClient wires a usage client to the platform services and the
// pricing schedule found in pricingFile. The UAA token endpoint is looked
// up from the cloud controller when it is not configured.
func NewUsageClient(ctx context.Context, logger lager.Logger, cfg Config, pricingFile string) (*nluusage.Client, error) {
	pricingConfig, err := pricing.LoadConfig(pricingFile)
	if err != nil {
		return nil, err
	}
	schedule, err := pricing.NewSchedule(pricingConfig)
	if err != nil {
		return nil, err
	}

	uaaConfig := cfg.UAA
	uaaConfig.Logger = logger.Session("uaa")
	if uaaConfig.TokenURL == "" {
		httpClient := uaaConfig.HTTPClient
		if httpClient == nil {
			httpClient = http.DefaultClient
		}
		uaaConfig.TokenURL, err = uaa.DiscoverTokenURL(ctx, httpClient, cfg.CloudController.APIAddress)
		if err != nil {
			return nil, errors.Wrap(err, "failed to discover the UAA token endpoint")
		}
		logger.Info("discovered-token-url", lager.Data{"token_url": uaaConfig.TokenURL})
	}
	authenticator, err := uaa.NewClient(uaaConfig)
	if err != nil {
		return nil, err
	}

	resolverConfig := cfg.CloudController
	resolverConfig.Logger = logger.Session("orgresolver")
	resolver, err := orgresolver.New(resolverConfig)
	if err != nil {
		return nil, err
	}

	meteringConfig := cfg.Metering
	meteringConfig.Logger = logger.Session("metering")
	fetcher, err := metering.NewFetcher(meteringConfig)
	if err != nil {
		return nil, err
	}

	usageConfig := cfg.Usage
	usageConfig.Authenticator = authenticator
	usageConfig.Resolver = resolver
	usageConfig.Fetcher = fetcher
	usageConfig.Schedule = schedule
	usageConfig.Logger = logger.Session("nlu-usage")
	return nluusage.New(usageConfig)
}

// GetEnvWithDefaultDuration panics if k is set to something other than a
// duration. NewConfigFromEnv recovers these panics as errors.
func GetEnvWithDefaultDuration(k string, def time.Duration) time.Duration {
	v := GetEnvWithDefaultString(k, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	return d
}

func GetEnvWithDefaultInt(k string, def int) int {
	v := GetEnvWithDefaultString(k, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	return n
}

func GetEnvWithDefaultBool(k string, def bool) bool {
	v := GetEnvWithDefaultString(k, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		panic(fmt.Sprintf("environment variable %s must be true or false: %s", k, err))
	}
	return b
}

func GetEnvWithDefaultString(k string, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
