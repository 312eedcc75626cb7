package nluusage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"code.cloudfoundry.org/lager"
	"golang.org/x/oauth2"

	"github.com/alphagov/paas-nlu-usage/metering"
	"github.com/alphagov/paas-nlu-usage/orgresolver"
	"github.com/alphagov/paas-nlu-usage/params"
	"github.com/alphagov/paas-nlu-usage/pricing"
	"github.com/alphagov/paas-nlu-usage/uaa"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const DefaultRegion = "us-south"

// UsageClient answers what a service instance has consumed and what a
// workload would cost
//
//counterfeiter:generate . UsageClient
type UsageClient interface {
	GetUsage(ctx context.Context, opts GetUsageOptions) (metering.Snapshot, error)
	EstimateCost(ctx context.Context, opts EstimateCostOptions) (pricing.Estimate, error)
}

type Config struct {
	// Credentials of the platform user (required)
	Username string
	Password string

	// The service instance usage is reported for (required)
	OrganizationName string
	SpaceName        string
	ServiceName      string
	InstanceName     string

	// Region the organization is metered in, defaults to us-south
	Region string

	// Authenticator, Resolver and Fetcher talk to the platform (required)
	Authenticator uaa.Authenticator
	Resolver      orgresolver.OrganizationResolver
	Fetcher       metering.ReportFetcher

	// Schedule prices estimates, defaults to the standard tiers
	Schedule *pricing.Schedule
	// Logger overrides the default logger
	Logger lager.Logger
	// Now overrides the clock used to pick the current month
	Now func() time.Time
}

type GetUsageOptions struct {
	// Month as YYYY-MM, defaults to the current month
	Month string
	// BillableOnly excludes non-billable (free) usage
	BillableOnly bool
}

type EstimateCostOptions struct {
	// FeatureCount is the number of features requested per call, defaults to 1
	FeatureCount int64
	// Plan defaults to the free plan of the schedule
	Plan string
	// IncludeFreeUsage counts non-billable usage toward the tiers
	IncludeFreeUsage bool
	// Payload is the text to be analysed (required)
	Payload string
}

type Client struct {
	cfg    Config
	target metering.Target
	logger lager.Logger

	mu    sync.Mutex
	token *oauth2.Token
}

var _ UsageClient = &Client{}

// New validates cfg. A *Error of kind MissingParameter names every required
// field that is unset; missing platform components are InvalidParameter.
func New(cfg Config) (*Client, error) {
	err := params.Check("New",
		params.P("username", cfg.Username),
		params.P("password", cfg.Password),
		params.P("organizationName", cfg.OrganizationName),
		params.P("spaceName", cfg.SpaceName),
		params.P("serviceName", cfg.ServiceName),
		params.P("instanceName", cfg.InstanceName),
	)
	if err != nil {
		return nil, wrap(err)
	}
	if cfg.Authenticator == nil || cfg.Resolver == nil || cfg.Fetcher == nil {
		return nil, newError(InvalidParameter, "nluusage.New: must supply Authenticator, Resolver and Fetcher")
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	if cfg.Schedule == nil {
		schedule, err := pricing.NewSchedule(pricing.DefaultConfig())
		if err != nil {
			return nil, &Error{Kind: InvalidParameter, Message: err.Error(), cause: err}
		}
		cfg.Schedule = schedule
	}
	if cfg.Logger == nil {
		cfg.Logger = lager.NewLogger("nluusage")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Client{
		cfg: cfg,
		target: metering.Target{
			OrganizationName: cfg.OrganizationName,
			SpaceName:        cfg.SpaceName,
			ServiceName:      cfg.ServiceName,
			InstanceName:     cfg.InstanceName,
		},
		logger: cfg.Logger,
	}, nil
}

// Authenticate exchanges the configured credentials for a token and records
// it as the most recent token.
func (c *Client) Authenticate(ctx context.Context) (*oauth2.Token, error) {
	token, err := c.cfg.Authenticator.Authenticate(ctx, uaa.Credentials{
		Username: c.cfg.Username,
		Password: c.cfg.Password,
	})
	if err != nil {
		return nil, wrap(err)
	}
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	return token, nil
}

// Token returns the token of the most recent successful Authenticate, or nil
func (c *Client) Token() *oauth2.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// GetUsage reports the items consumed and money spent by the instance in a
// month. An organization without reported usage has zero usage.
func (c *Client) GetUsage(ctx context.Context, opts GetUsageOptions) (metering.Snapshot, error) {
	month, err := c.month(opts.Month)
	if err != nil {
		return metering.Snapshot{}, err
	}
	logger := c.logger.Session("get-usage", lager.Data{
		"month":         month,
		"billable_only": opts.BillableOnly,
	})

	token, err := c.Authenticate(ctx)
	if err != nil {
		return metering.Snapshot{}, err
	}

	orgGUID, err := c.cfg.Resolver.Resolve(ctx, token, c.cfg.OrganizationName)
	if err != nil {
		return metering.Snapshot{}, wrap(err)
	}

	report, err := c.cfg.Fetcher.Fetch(ctx, token, c.cfg.Region, orgGUID, month)
	if err != nil {
		return metering.Snapshot{}, wrap(err)
	}

	snapshot := metering.Reduce(logger, report, c.target, !opts.BillableOnly)
	logger.Debug("reduced", lager.Data{
		"item_count": snapshot.ItemCount,
		"total_cost": snapshot.TotalCost.String(),
	})
	return snapshot, nil
}

// EstimateCost prices a payload on top of the billable usage of the current
// month, or all usage if IncludeFreeUsage is set.
func (c *Client) EstimateCost(ctx context.Context, opts EstimateCostOptions) (pricing.Estimate, error) {
	if err := params.CheckContext(ctx, "EstimateCost", params.P("payload", opts.Payload)); err != nil {
		return pricing.Estimate{}, wrap(err)
	}
	if opts.FeatureCount < 0 {
		return pricing.Estimate{}, newError(InvalidParameter,
			fmt.Sprintf("featureCount must not be negative, got %d", opts.FeatureCount))
	}
	plan := opts.Plan
	if plan == "" {
		plan = c.cfg.Schedule.Config().FreePlan
	}

	usage, err := c.GetUsage(ctx, GetUsageOptions{BillableOnly: !opts.IncludeFreeUsage})
	if err != nil {
		return pricing.Estimate{}, err
	}

	estimate := c.cfg.Schedule.Estimate(pricing.Input{
		FeatureCount:      opts.FeatureCount,
		Plan:              plan,
		ExistingItemCount: usage.ItemCount,
		Payload:           opts.Payload,
	})
	c.logger.Debug("estimated", lager.Data{
		"plan":       estimate.Plan,
		"existing":   usage.ItemCount,
		"item_cost":  estimate.ItemCost,
		"money_cost": estimate.MoneyCost.String(),
	})
	return estimate, nil
}

func (c *Client) month(month string) (string, error) {
	if month == "" {
		return c.cfg.Now().UTC().Format(metering.MonthFormat), nil
	}
	if _, err := time.Parse(metering.MonthFormat, month); err != nil {
		return "", newError(InvalidParameter, fmt.Sprintf("month must be formatted as YYYY-MM, got %q", month))
	}
	return month, nil
}
