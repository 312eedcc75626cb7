package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gbytes"
	. "github.com/onsi/gomega/gexec"

	"github.com/alphagov/paas-nlu-usage/nluusage"
)

// fakePlatform serves just enough of the cloud controller, UAA and the
// metering API for the app to answer a usage query
type fakePlatform struct {
	server        *httptest.Server
	meteringPaths chan string
}

func newFakePlatform(reportFile string) *fakePlatform {
	report, err := ioutil.ReadFile(reportFile)
	Expect(err).ToNot(HaveOccurred())

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_name": "jeff",
		"exp":       time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("uaa-secret"))
	Expect(err).ToNot(HaveOccurred())

	p := &fakePlatform{meteringPaths: make(chan string, 100)}
	mux := http.NewServeMux()
	p.server = httptest.NewServer(mux)

	mux.HandleFunc("/v2/info", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"authorization_endpoint": p.server.URL,
			"token_endpoint":         p.server.URL,
		})
	})
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.PostForm.Get("password") != "s3cret" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"unauthorized","error_description":"Bad credentials"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": accessToken,
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/v2/organizations", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total_results": 1,
			"total_pages": 1,
			"next_url": "",
			"resources": [
				{"metadata": {"guid": "org-guid"}, "entity": {"name": "my-org"}}
			]
		}`))
	})
	mux.HandleFunc("/v4/metering/organizations/", func(w http.ResponseWriter, r *http.Request) {
		p.meteringPaths <- r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write(report)
	})
	return p
}

func (p *fakePlatform) Close() {
	p.server.Close()
}

func setPlatformEnv(url string) {
	os.Setenv("CF_USERNAME", "jeff")
	os.Setenv("CF_PASSWORD", "s3cret")
	os.Setenv("CF_ORGANIZATION_NAME", "my-org")
	os.Setenv("CF_SPACE_NAME", "dev")
	os.Setenv("NLU_INSTANCE_NAME", "my-nlu")
	os.Setenv("CF_API_ADDRESS", url)
	os.Setenv("METERING_API_ADDRESS", url)
}

var _ = Describe("App", func() {
	var (
		platform *fakePlatform
		pwd      string
	)

	BeforeEach(func() {
		pwd = os.Getenv("PWD")
		for _, k := range configEnvironment {
			os.Unsetenv(k)
		}
		platform = newFakePlatform("metering/testdata/report.json")
		setPlatformEnv(platform.server.URL)
	})

	AfterEach(func() {
		platform.Close()
		for _, k := range configEnvironment {
			os.Unsetenv(k)
		}
		os.Setenv("PWD", pwd)
	})

	Describe("New", func() {
		var (
			ctx    context.Context
			cancel context.CancelFunc
			cfg    Config
		)

		BeforeEach(func() {
			ctx, cancel = context.WithCancel(context.Background())
			var err error
			cfg, err = NewConfigFromEnv()
			Expect(err).ToNot(HaveOccurred())
			cfg.Logger = lager.NewLogger("test")
		})

		AfterEach(func() {
			cancel()
		})

		It("should build a usage client from the environment", func() {
			app, err := New(ctx, cfg)
			Expect(err).ToNot(HaveOccurred())
			defer app.Shutdown()

			snapshot, err := app.Client().GetUsage(ctx, nluusage.GetUsageOptions{Month: "2026-10"})
			Expect(err).ToNot(HaveOccurred())
			Expect(snapshot.ItemCount).To(Equal(int64(1010)))
			Expect(snapshot.TotalCost.String()).To(Equal("0.03"))

			var path string
			Eventually(platform.meteringPaths).Should(Receive(&path))
			Expect(path).To(Equal("/v4/metering/organizations/us-south:org-guid/usage/2026-10"))
		})

		It("should discover the token endpoint from the cloud controller", func() {
			logs := NewBuffer()
			logger := lager.NewLogger("test")
			logger.RegisterSink(lager.NewWriterSink(logs, lager.DEBUG))
			cfg.Logger = logger
			app, err := New(ctx, cfg)
			Expect(err).ToNot(HaveOccurred())
			defer app.Shutdown()

			Expect(logs).To(Say(`"message":"test.discovered-token-url"`))
		})

		It("should fail when config.json is missing", func() {
			cfg.AppRootDir = "/does/not/exist"
			_, err := New(ctx, cfg)
			Expect(err).To(MatchError("/does/not/exist/config.json does not exist"))
		})

		It("should fail when a required parameter is missing", func() {
			cfg.Usage.InstanceName = ""
			_, err := New(ctx, cfg)
			Expect(err).To(MatchError(ContainSubstring("instanceName")))
		})

		It("should fail when the token endpoint cannot be discovered", func() {
			cfg.CloudController.APIAddress = platform.server.URL + "/nowhere"
			_, err := New(ctx, cfg)
			Expect(err).To(MatchError(ContainSubstring("failed to discover the UAA token endpoint")))
		})
	})

	Describe("the api binary", func() {
		var (
			session *Session
			port    = "8765"
		)

		BeforeEach(func() {
			os.Setenv("PORT", port)
			os.Setenv("USAGE_POLL_SCHEDULE", "1h")
		})

		AfterEach(func() {
			if session != nil {
				session.Kill()
			}
		})

		It("should refuse to start in an unknown mode", func() {
			var err error
			session, err = Start(exec.Command(BinaryPath, "collector"), GinkgoWriter, GinkgoWriter)
			Expect(err).ToNot(HaveOccurred())
			Eventually(session, 10*time.Second).Should(Exit(1))
			Expect(session.Out).To(Say("unknown mode"))
		})

		It("should serve usage from the metering report", func() {
			var err error
			session, err = Start(exec.Command(BinaryPath, "api"), GinkgoWriter, GinkgoWriter)
			Expect(err).ToNot(HaveOccurred())
			Eventually(session.Out, 30*time.Second).Should(Say("paas-nlu-usage.api.started"))

			res, err := http.Get(fmt.Sprintf("http://localhost:%s/usage?month=2026-10", port))
			Expect(err).ToNot(HaveOccurred())
			defer res.Body.Close()
			Expect(res.StatusCode).To(Equal(http.StatusOK))
			Expect(res.Header.Get(echo.HeaderContentType)).To(HavePrefix(echo.MIMEApplicationJSON))

			body, err := ioutil.ReadAll(res.Body)
			Expect(err).ToNot(HaveOccurred())
			Expect(body).To(MatchJSON(`{"item_count": 1010, "total_cost": "0.03"}`))

			res, err = http.Post(
				fmt.Sprintf("http://localhost:%s/estimate", port),
				echo.MIMEApplicationJSON,
				strings.NewReader(`{"feature_count": 2, "payload": "some text to analyse"}`),
			)
			Expect(err).ToNot(HaveOccurred())
			defer res.Body.Close()
			Expect(res.StatusCode).To(Equal(http.StatusOK))

			session.Interrupt()
			Eventually(session, 15*time.Second).Should(Exit(0))
		})
	})
})
