package apiserver_test

import (
	"bytes"
	"encoding/json"

	"code.cloudfoundry.org/lager"
	"github.com/labstack/gommon/log"
	"github.com/onsi/gomega/gbytes"

	. "github.com/alphagov/paas-nlu-usage/apiserver"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logger", func() {
	var (
		buf    *gbytes.Buffer
		logger *Logger
	)

	BeforeEach(func() {
		buf = gbytes.NewBuffer()
		testLogger := lager.NewLogger("test")
		testLogger.RegisterSink(lager.NewWriterSink(buf, lager.DEBUG))
		logger = NewLogger(testLogger)
	})

	It("should log access log lines as request data", func() {
		line, err := json.Marshal(map[string]interface{}{"uri": "/usage", "status": 200})
		Expect(err).ToNot(HaveOccurred())

		n, err := logger.Write(line)
		Expect(err).ToNot(HaveOccurred())
		Expect(n).To(Equal(len(line)))

		logs := sinkLogs(buf)
		Expect(logs).To(HaveLen(1))
		Expect(logs[0].Message).To(Equal("test.request"))
		Expect(logs[0].Data).To(HaveKeyWithValue("uri", "/usage"))
	})

	It("should keep lines that are not JSON", func() {
		_, err := logger.Write([]byte("plain text"))
		Expect(err).ToNot(HaveOccurred())
		Expect(sinkLogs(buf)[0].Data).To(HaveKeyWithValue("detail", "plain text"))
	})

	It("should drop messages below the configured level", func() {
		logger.SetLevel(log.INFO)
		logger.Debug("hidden")
		logger.Info("shown")

		logs := sinkLogs(buf)
		Expect(logs).To(HaveLen(1))
		Expect(logs[0].LogLevel).To(Equal(lager.INFO))
		Expect(logs[0].Data).To(HaveKeyWithValue("detail", "shown"))
	})

	It("should log errors at error level", func() {
		logger.Errorf("failed: %d", 42)

		logs := sinkLogs(buf)
		Expect(logs).To(HaveLen(1))
		Expect(logs[0].LogLevel).To(Equal(lager.ERROR))
		Expect(logs[0].Data).To(HaveKeyWithValue("error", "failed: 42"))
	})

	It("should log under the prefix", func() {
		logger.SetPrefix("api")
		logger.Print("hello")
		Expect(logger.Prefix()).To(Equal("api"))
		Expect(sinkLogs(buf)[0].Message).To(Equal("test.api"))
	})
})

// sinkLogs decodes the lines a lager writer sink wrote to buf
func sinkLogs(buf *gbytes.Buffer) []lager.LogFormat {
	logs := []lager.LogFormat{}
	for _, line := range bytes.Split(buf.Contents(), []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var entry lager.LogFormat
		Expect(json.Unmarshal(line, &entry)).To(Succeed())
		logs = append(logs, entry)
	}
	return logs
}
