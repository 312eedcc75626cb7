package metering

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// MonthFormat is the layout of a usage month
const MonthFormat = "2006-01"

// ReportFetcher fetches metering reports
//
//counterfeiter:generate . ReportFetcher
type ReportFetcher interface {
	Fetch(ctx context.Context, token *oauth2.Token, region, orgGUID, month string) (*Report, error)
}

// Config configures a Fetcher
type Config struct {
	// APIAddress is the base URL of the metering reporting API (required)
	APIAddress string
	// HTTPClient is the base client requests are made with
	HTTPClient *http.Client
	// Logger overrides the default logger
	Logger lager.Logger
}

// Fetcher requests metering reports with a bearer token
type Fetcher struct {
	apiAddress string
	httpClient *http.Client
	logger     lager.Logger
}

var _ ReportFetcher = &Fetcher{}

// NewFetcher creates a Fetcher for cfg
func NewFetcher(cfg Config) (*Fetcher, error) {
	if cfg.APIAddress == "" {
		return nil, fmt.Errorf("metering.NewFetcher: must supply APIAddress")
	}
	if cfg.Logger == nil {
		cfg.Logger = lager.NewLogger("metering")
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Fetcher{
		apiAddress: strings.TrimSuffix(cfg.APIAddress, "/"),
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}, nil
}

// ReportPath is the path of an organization's report for a region and month
func ReportPath(region, orgGUID, month string) string {
	return fmt.Sprintf("/v4/metering/organizations/%s:%s/usage/%s", region, orgGUID, month)
}

// Fetch returns the metering report of orgGUID in region for month (YYYY-MM)
func (f *Fetcher) Fetch(ctx context.Context, token *oauth2.Token, region, orgGUID, month string) (*Report, error) {
	path := ReportPath(region, orgGUID, month)
	f.logger.Debug("fetching", lager.Data{
		"path": path,
	})

	ctx = context.WithValue(ctx, oauth2.HTTPClient, f.httpClient)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.apiAddress+path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "error building request for %s", path)
	}
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "error fetching %s", path)
	}
	defer resp.Body.Close()

	resBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %s body", path)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s request failed: %d %s", path, resp.StatusCode, resBody)
	}

	report := &Report{}
	if err := json.Unmarshal(resBody, report); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling %s", path)
	}

	f.logger.Debug("fetched", lager.Data{
		"path":          path,
		"organizations": len(report.Organizations),
		"elapsed":       int64(time.Since(startTime)),
	})
	return report, nil
}
