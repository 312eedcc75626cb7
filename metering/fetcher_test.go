package metering_test

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager"
	"golang.org/x/oauth2"

	"github.com/alphagov/paas-nlu-usage/metering"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fetcher", func() {
	var (
		mux     *http.ServeMux
		server  *httptest.Server
		fetcher *metering.Fetcher
		token   *oauth2.Token
		ctx     context.Context
	)

	BeforeEach(func() {
		mux = http.NewServeMux()
		server = httptest.NewServer(mux)
		ctx = context.Background()
		token = &oauth2.Token{AccessToken: "access-token", TokenType: "bearer"}

		var err error
		fetcher, err = metering.NewFetcher(metering.Config{
			APIAddress: server.URL + "/",
			Logger:     lager.NewLogger("test"),
		})
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()
	})

	It("should require an api address", func() {
		_, err := metering.NewFetcher(metering.Config{})
		Expect(err).To(MatchError(ContainSubstring("must supply APIAddress")))
	})

	It("should build the report path from region, organization and month", func() {
		Expect(metering.ReportPath("us-south", "org-guid", "2023-04")).To(Equal(
			"/v4/metering/organizations/us-south:org-guid/usage/2023-04",
		))
	})

	It("should fetch and decode the report with a bearer token", func() {
		var authorization string
		mux.HandleFunc("/v4/metering/organizations/us-south:org-guid/usage/2023-04", func(w http.ResponseWriter, r *http.Request) {
			authorization = r.Header.Get("Authorization")
			body, err := ioutil.ReadFile("testdata/report.json")
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write(body)
		})

		report, err := fetcher.Fetch(ctx, token, "us-south", "org-guid", "2023-04")
		Expect(err).ToNot(HaveOccurred())
		Expect(authorization).To(Equal("Bearer access-token"))
		Expect(report.Organizations).To(HaveLen(1))
		Expect(report.Organizations[0].Name).To(Equal("my-org"))
		Expect(report.Organizations[0].NonBillableUsage.Spaces[0].Services[0].Instances[0].Usage).To(HaveLen(2))
	})

	It("should fail on a non-200 response", func() {
		mux.HandleFunc("/v4/metering/organizations/us-south:org-guid/usage/2023-04", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message":"forbidden"}`))
		})

		_, err := fetcher.Fetch(ctx, token, "us-south", "org-guid", "2023-04")
		Expect(err).To(MatchError(ContainSubstring("request failed: 403")))
	})

	It("should fail on an undecodable response", func() {
		mux.HandleFunc("/v4/metering/organizations/us-south:org-guid/usage/2023-04", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not-json`))
		})

		_, err := fetcher.Fetch(ctx, token, "us-south", "org-guid", "2023-04")
		Expect(err).To(MatchError(ContainSubstring("error unmarshalling")))
	})

	It("should fail when the context is cancelled", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := fetcher.Fetch(cancelled, token, "us-south", "org-guid", "2023-04")
		Expect(err).To(HaveOccurred())
	})
})
