package uaa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// DiscoverTokenURL asks the cloud controller at apiAddress which UAA issues
// its tokens and returns that UAA's token endpoint.
func DiscoverTokenURL(ctx context.Context, httpClient *http.Client, apiAddress string) (string, error) {
	if apiAddress == "" {
		return "", fmt.Errorf("an api address is required to discover the token endpoint")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSuffix(apiAddress, "/")+"/v2/info", nil)
	if err != nil {
		return "", err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to request /v2/info")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("got status %d from /v2/info", resp.StatusCode)
	}
	var endpoints struct {
		AuthorizationEndpoint string `json:"authorization_endpoint"`
		TokenEndpoint         string `json:"token_endpoint"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&endpoints); err != nil {
		return "", errors.Wrap(err, "failed to decode /v2/info json")
	}
	if endpoints.TokenEndpoint == "" {
		return "", fmt.Errorf("/v2/info did not include a token_endpoint")
	}
	return strings.TrimSuffix(endpoints.TokenEndpoint, "/") + "/oauth/token", nil
}
