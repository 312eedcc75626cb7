package uaa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const DefaultClientID = "cf"

// Credentials are the username and password of a platform user
type Credentials struct {
	Username string
	Password string
}

// Authenticator exchanges credentials for an access token
//
//counterfeiter:generate . Authenticator
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (*oauth2.Token, error)
}

// AuthenticationError is returned when the identity service rejects the
// credentials
type AuthenticationError struct {
	StatusCode  int
	Description string
}

func (e *AuthenticationError) Error() string {
	return e.Description
}

type Config struct {
	// TokenURL is the UAA token endpoint, e.g. https://uaa.example.com/oauth/token (required)
	TokenURL string
	// ClientID is sent in the form body of the grant
	ClientID string
	// HTTPClient overrides the client used to reach the token endpoint
	HTTPClient *http.Client
	// Logger overrides the default logger
	Logger lager.Logger
}

// Client performs password grants against UAA
type Client struct {
	oauth      *oauth2.Config
	httpClient *http.Client
	logger     lager.Logger
}

var _ Authenticator = &Client{}

func NewClient(cfg Config) (*Client, error) {
	if cfg.TokenURL == "" {
		return nil, fmt.Errorf("uaa.NewClient: must supply TokenURL")
	}
	if cfg.ClientID == "" {
		cfg.ClientID = DefaultClientID
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.Logger == nil {
		cfg.Logger = lager.NewLogger("uaa")
	}
	return &Client{
		oauth: &oauth2.Config{
			ClientID: cfg.ClientID,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}, nil
}

// Authenticate performs a single password grant. A rejected grant returns an
// *AuthenticationError; transport failures are returned as they are.
func (c *Client) Authenticate(ctx context.Context, creds Credentials) (*oauth2.Token, error) {
	logger := c.logger.Session("authenticate", lager.Data{
		"username":  creds.Username,
		"token_url": c.oauth.Endpoint.TokenURL,
	})

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.oauth.PasswordCredentialsToken(ctx, creds.Username, creds.Password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			authErr := newAuthenticationError(retrieveErr)
			logger.Info("rejected", lager.Data{"status": authErr.StatusCode, "reason": authErr.Description})
			return nil, authErr
		}
		return nil, err
	}

	c.logClaims(logger, token)
	return token, nil
}

func newAuthenticationError(retrieveErr *oauth2.RetrieveError) *AuthenticationError {
	authErr := &AuthenticationError{}
	if retrieveErr.Response != nil {
		authErr.StatusCode = retrieveErr.Response.StatusCode
		authErr.Description = retrieveErr.Response.Status
	}

	var body struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(retrieveErr.Body, &body); err == nil {
		if body.ErrorDescription != "" {
			authErr.Description = body.ErrorDescription
		} else if body.Error != "" && authErr.Description == "" {
			authErr.Description = body.Error
		}
	}
	if authErr.Description == "" {
		authErr.Description = "authentication failed"
	}
	return authErr
}

// logClaims records who the token was issued to. Tokens that are not JWTs
// are treated as opaque.
func (c *Client) logClaims(logger lager.Logger, token *oauth2.Token) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token.AccessToken, jwt.MapClaims{})
	if err != nil {
		logger.Debug("opaque-token", lager.Data{"token_type": token.Type()})
		return
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return
	}
	data := lager.Data{"token_type": token.Type()}
	if userName, ok := claims["user_name"]; ok {
		data["user_name"] = userName
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		data["expires_at"] = exp.Time.UTC().Format(time.RFC3339)
	}
	logger.Debug("authenticated", data)
}
