package apiserver_test

import (
	"context"
	"net/http/httptest"

	"code.cloudfoundry.org/lager"
	"github.com/labstack/echo/v4"

	. "github.com/alphagov/paas-nlu-usage/apiserver"
	"github.com/alphagov/paas-nlu-usage/nluusage/nluusagefakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Status", func() {

	var (
		ctx    context.Context
		cancel context.CancelFunc
		cfg    Config
	)

	BeforeEach(func() {
		cfg = Config{
			Logger: lager.NewLogger("test"),
			Client: &nluusagefakes.FakeUsageClient{},
		}
		ctx, cancel = context.WithCancel(context.Background())
	})

	AfterEach(func() {
		defer cancel()
	})

	It("should return a json ok true message", func() {
		req := httptest.NewRequest(echo.GET, "/", nil)
		res := httptest.NewRecorder()

		e := New(cfg)
		e.ServeHTTP(res, req)

		defer e.Shutdown(ctx)

		Expect(res.Body).To(MatchJSON(`{
			"ok": true
		}`))
		Expect(res.Code).To(Equal(200))
		Expect(res.Header().Get(echo.HeaderContentType)).To(HavePrefix(echo.MIMEApplicationJSON))
	})

	It("should tag every response with a request id", func() {
		req := httptest.NewRequest(echo.GET, "/", nil)
		res := httptest.NewRecorder()

		e := New(cfg)
		e.ServeHTTP(res, req)

		defer e.Shutdown(ctx)

		Expect(res.Header().Get(echo.HeaderXRequestID)).To(MatchRegexp(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[0-9a-f]{4}-[0-9a-f]{12}$`))
	})

	It("should return a json error for unknown routes", func() {
		req := httptest.NewRequest(echo.GET, "/nope", nil)
		res := httptest.NewRecorder()

		e := New(cfg)
		e.ServeHTTP(res, req)

		defer e.Shutdown(ctx)

		Expect(res.Code).To(Equal(404))
		Expect(res.Body).To(MatchJSON(`{"error": "Not Found"}`))
	})
})
