package orgresolver

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager"
	cfclient "github.com/cloudfoundry-community/go-cfclient"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// OrgLister lists every organization visible to a token
//
//counterfeiter:generate . OrgLister
type OrgLister interface {
	ListOrgs() ([]cfclient.Org, error)
}

// OrganizationResolver turns an organization name into its GUID
//
//counterfeiter:generate . OrganizationResolver
type OrganizationResolver interface {
	Resolve(ctx context.Context, token *oauth2.Token, name string) (string, error)
}

// ClientFactory creates an OrgLister authenticated with token
type ClientFactory func(token *oauth2.Token) (OrgLister, error)

// NotFoundError is returned when no visible organization has the requested name
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Unable to find an organization with the name %q", e.Name)
}

type Config struct {
	// APIAddress is the cloud controller address (required unless NewClient is set)
	APIAddress string
	// SkipSSLValidation disables TLS verification of the cloud controller
	SkipSSLValidation bool
	// UserAgent is sent with every cloud controller request
	UserAgent string
	// Timeout bounds each cloud controller request
	Timeout time.Duration
	// NewClient overrides how cloud controller clients are built
	NewClient ClientFactory
	// Logger overrides the default logger
	Logger lager.Logger
}

type Resolver struct {
	newClient ClientFactory
	logger    lager.Logger
}

var _ OrganizationResolver = &Resolver{}

func New(cfg Config) (*Resolver, error) {
	if cfg.Logger == nil {
		cfg.Logger = lager.NewLogger("orgresolver")
	}
	if cfg.NewClient == nil {
		if cfg.APIAddress == "" {
			return nil, fmt.Errorf("orgresolver.New: must supply APIAddress")
		}
		cfg.NewClient = cloudControllerClientFactory(cfg)
	}
	return &Resolver{
		newClient: cfg.NewClient,
		logger:    cfg.Logger,
	}, nil
}

func cloudControllerClientFactory(cfg Config) ClientFactory {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return func(token *oauth2.Token) (OrgLister, error) {
		return cfclient.NewClient(&cfclient.Config{
			ApiAddress: cfg.APIAddress,
			Token:      token.AccessToken,
			UserAgent:  cfg.UserAgent,
			HttpClient: &http.Client{
				Timeout: timeout,
				Transport: &http.Transport{
					Proxy:           http.ProxyFromEnvironment,
					TLSClientConfig: &tls.Config{InsecureSkipVerify: cfg.SkipSSLValidation},
				},
			},
			SkipSslValidation: cfg.SkipSSLValidation,
		})
	}
}

// Resolve returns the GUID of the organization named name. Names are
// compared exactly.
func (r *Resolver) Resolve(ctx context.Context, token *oauth2.Token, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	logger := r.logger.Session("resolve", lager.Data{"organization": name})

	client, err := r.newClient(token)
	if err != nil {
		return "", errors.Wrap(err, "error creating cloud controller client")
	}

	orgs, err := client.ListOrgs()
	if err != nil {
		return "", errors.Wrap(err, "error listing organizations")
	}
	logger.Debug("listed", lager.Data{"count": len(orgs)})

	for _, org := range orgs {
		if org.Name == name {
			logger.Debug("resolved", lager.Data{"guid": org.Guid})
			return org.Guid, nil
		}
	}
	return "", &NotFoundError{Name: name}
}
