package params_test

import (
	"context"
	"errors"

	. "github.com/alphagov/paas-nlu-usage/params"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Check", func() {
	It("should pass when every value is set", func() {
		err := Check("constructor()", P("username", "u"), P("count", 1), P("flag", true))
		Expect(err).ToNot(HaveOccurred())
	})

	It("should list every missing name, not just the first", func() {
		err := Check("constructor()",
			P("username", ""),
			P("password", "p"),
			P("organizationName", ""),
			P("spaceName", nil),
		)
		Expect(err).To(MatchError("[ nlu-usage @ constructor() ] : Missing one or more required parameters: username,organizationName,spaceName"))

		var missingErr *MissingError
		Expect(errors.As(err, &missingErr)).To(BeTrue())
		Expect(missingErr.Missing).To(Equal([]string{"username", "organizationName", "spaceName"}))
	})

	DescribeTable("should treat zero values as missing",
		func(value interface{}) {
			Expect(Check("", P("value", value))).To(MatchError(ContainSubstring("required parameters: value")))
		},
		Entry("nil", nil),
		Entry("empty string", ""),
		Entry("zero int", 0),
		Entry("zero float", 0.0),
		Entry("false", false),
		Entry("nil slice", []byte(nil)),
	)

	It("should omit the label when none is given", func() {
		Expect(Check("", P("payload", ""))).To(MatchError("[ nlu-usage ] : Missing one or more required parameters: payload"))
	})
})

var _ = Describe("CheckContext", func() {
	It("should format errors exactly like Check", func() {
		syncErr := Check("estimateCost()", P("payload", ""))
		ctxErr := CheckContext(context.Background(), "estimateCost()", P("payload", ""))
		Expect(ctxErr).To(HaveOccurred())
		Expect(ctxErr.Error()).To(Equal(syncErr.Error()))
	})

	It("should pass when every value is set", func() {
		Expect(CheckContext(context.Background(), "estimateCost()", P("payload", "text"))).To(Succeed())
	})

	It("should report a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		Expect(CheckContext(ctx, "estimateCost()", P("payload", "text"))).To(MatchError(context.Canceled))
	})
})
