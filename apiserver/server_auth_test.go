package apiserver_test

import (
	"context"
	"net/http/httptest"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	. "github.com/alphagov/paas-nlu-usage/apiserver"
	"github.com/alphagov/paas-nlu-usage/nluusage/nluusagefakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Bearer token protection", func() {

	const signingKey = "top-secret"

	var (
		ctx        context.Context
		cancel     context.CancelFunc
		fakeClient *nluusagefakes.FakeUsageClient
		e          *echo.Echo
	)

	signedToken := func(key string, expiresIn time.Duration) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "dashboard",
			"exp": time.Now().Add(expiresIn).Unix(),
		}).SignedString([]byte(key))
		Expect(err).ToNot(HaveOccurred())
		return token
	}

	BeforeEach(func() {
		fakeClient = &nluusagefakes.FakeUsageClient{}
		ctx, cancel = context.WithCancel(context.Background())
		e = New(Config{
			Logger:     lager.NewLogger("test"),
			Client:     fakeClient,
			SigningKey: signingKey,
		})
	})

	AfterEach(func() {
		defer cancel()
		e.Shutdown(ctx)
	})

	get := func(target, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(echo.GET, target, nil)
		if token != "" {
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		}
		res := httptest.NewRecorder()
		e.ServeHTTP(res, req)
		return res
	}

	It("should accept a token signed with the signing key", func() {
		res := get("/usage", signedToken(signingKey, time.Hour))
		Expect(res.Code).To(Equal(200))
		Expect(fakeClient.GetUsageCallCount()).To(Equal(1))
	})

	It("should reject a request without a token", func() {
		res := get("/usage", "")
		Expect(res.Code).To(BeElementOf(400, 401))
		Expect(fakeClient.GetUsageCallCount()).To(Equal(0))
	})

	It("should reject a token signed with another key", func() {
		res := get("/usage", signedToken("another-key", time.Hour))
		Expect(res.Code).To(Equal(401))
		Expect(fakeClient.GetUsageCallCount()).To(Equal(0))
	})

	It("should reject an expired token", func() {
		res := get("/usage", signedToken(signingKey, -time.Hour))
		Expect(res.Code).To(Equal(401))
	})

	It("should leave the status route open", func() {
		res := get("/", "")
		Expect(res.Code).To(Equal(200))
	})
})
