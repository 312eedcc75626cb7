package orgresolver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager"
	cfclient "github.com/cloudfoundry-community/go-cfclient"
	"golang.org/x/oauth2"

	. "github.com/alphagov/paas-nlu-usage/orgresolver"
	"github.com/alphagov/paas-nlu-usage/orgresolver/orgresolverfakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Resolver", func() {
	var (
		ctx        context.Context
		token      *oauth2.Token
		fakeLister *orgresolverfakes.FakeOrgLister
		factoryErr error
		resolver   *Resolver
	)

	BeforeEach(func() {
		ctx = context.Background()
		token = &oauth2.Token{AccessToken: "access-token", TokenType: "bearer"}
		fakeLister = &orgresolverfakes.FakeOrgLister{}
		factoryErr = nil
		fakeLister.ListOrgsReturns([]cfclient.Org{
			{Guid: "guid-1", Name: "other-org"},
			{Guid: "guid-2", Name: "my-org"},
			{Guid: "guid-3", Name: "My-Org"},
		}, nil)

		var err error
		resolver, err = New(Config{
			Logger: lager.NewLogger("test"),
			NewClient: func(t *oauth2.Token) (OrgLister, error) {
				Expect(t).To(Equal(token))
				return fakeLister, factoryErr
			},
		})
		Expect(err).ToNot(HaveOccurred())
	})

	It("should require an api address when no client factory is given", func() {
		_, err := New(Config{})
		Expect(err).To(MatchError(ContainSubstring("must supply APIAddress")))
	})

	It("should return the guid of the exactly matching organization", func() {
		guid, err := resolver.Resolve(ctx, token, "my-org")
		Expect(err).ToNot(HaveOccurred())
		Expect(guid).To(Equal("guid-2"))
		Expect(fakeLister.ListOrgsCallCount()).To(Equal(1))
	})

	It("should compare names case sensitively", func() {
		guid, err := resolver.Resolve(ctx, token, "My-Org")
		Expect(err).ToNot(HaveOccurred())
		Expect(guid).To(Equal("guid-3"))
	})

	It("should return a NotFoundError when no organization matches", func() {
		_, err := resolver.Resolve(ctx, token, "missing-org")
		var notFound *NotFoundError
		Expect(errors.As(err, &notFound)).To(BeTrue())
		Expect(err).To(MatchError(`Unable to find an organization with the name "missing-org"`))
	})

	It("should wrap listing failures", func() {
		fakeLister.ListOrgsReturns(nil, errors.New("cloud controller unavailable"))
		_, err := resolver.Resolve(ctx, token, "my-org")
		Expect(err).To(MatchError("error listing organizations: cloud controller unavailable"))
	})

	It("should wrap client creation failures", func() {
		factoryErr = errors.New("bad api address")
		_, err := resolver.Resolve(ctx, token, "my-org")
		Expect(err).To(MatchError(ContainSubstring("bad api address")))
		Expect(fakeLister.ListOrgsCallCount()).To(Equal(0))
	})

	It("should not list organizations when the context is done", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := resolver.Resolve(cancelled, token, "my-org")
		Expect(err).To(MatchError(context.Canceled))
		Expect(fakeLister.ListOrgsCallCount()).To(Equal(0))
	})

	Context("against a cloud controller", func() {
		var (
			mux           *http.ServeMux
			server        *httptest.Server
			authorization string
		)

		BeforeEach(func() {
			mux = http.NewServeMux()
			server = httptest.NewServer(mux)

			mux.HandleFunc("/v2/info", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]string{
					"authorization_endpoint": server.URL,
					"token_endpoint":         server.URL,
				})
			})
			mux.HandleFunc("/v2/organizations", func(w http.ResponseWriter, r *http.Request) {
				authorization = r.Header.Get("Authorization")
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{
					"total_results": 2,
					"total_pages": 1,
					"next_url": "",
					"resources": [
						{"metadata": {"guid": "cf-guid-1"}, "entity": {"name": "other-org"}},
						{"metadata": {"guid": "cf-guid-2"}, "entity": {"name": "my-org"}}
					]
				}`))
			})

			var err error
			resolver, err = New(Config{
				APIAddress: server.URL,
				UserAgent:  "nlu-usage-test",
				Logger:     lager.NewLogger("test"),
			})
			Expect(err).ToNot(HaveOccurred())
		})

		AfterEach(func() {
			server.Close()
		})

		It("should list organizations with the bearer token", func() {
			guid, err := resolver.Resolve(ctx, token, "my-org")
			Expect(err).ToNot(HaveOccurred())
			Expect(guid).To(Equal("cf-guid-2"))
			Expect(authorization).To(Equal("Bearer access-token"))
		})
	})
})
