package apiserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// Logger wraps a lager.Logger in the echo.Logger interface. Messages below
// the configured level are dropped; warnings are logged as info since lager
// has no warn level.
type Logger struct {
	lvl    log.Lvl
	lager  lager.Logger
	action string
	output io.Writer
}

var _ echo.Logger = &Logger{}
var _ io.Writer = &Logger{}

func NewLogger(logger lager.Logger) *Logger {
	return &Logger{
		lvl:    log.DEBUG,
		lager:  logger,
		action: "echo",
		output: os.Stdout,
	}
}

func (l *Logger) enabled(lvl log.Lvl) bool {
	return lvl >= l.lvl
}

func (l *Logger) info(lvl log.Lvl, data lager.Data) {
	if !l.enabled(lvl) {
		return
	}
	if lvl == log.DEBUG {
		l.lager.Debug(l.action, data)
		return
	}
	l.lager.Info(l.action, data)
}

func detail(s string) lager.Data {
	return lager.Data{"detail": s}
}

func (l *Logger) Debug(i ...interface{}) {
	l.info(log.DEBUG, detail(fmt.Sprint(i...)))
}

func (l *Logger) Debugf(format string, i ...interface{}) {
	l.info(log.DEBUG, detail(fmt.Sprintf(format, i...)))
}

func (l *Logger) Debugj(j log.JSON) {
	l.info(log.DEBUG, lager.Data(j))
}

func (l *Logger) Info(i ...interface{}) {
	l.info(log.INFO, detail(fmt.Sprint(i...)))
}

func (l *Logger) Infof(format string, i ...interface{}) {
	l.info(log.INFO, detail(fmt.Sprintf(format, i...)))
}

func (l *Logger) Infoj(j log.JSON) {
	l.info(log.INFO, lager.Data(j))
}

func (l *Logger) Warn(i ...interface{}) {
	l.info(log.WARN, detail(fmt.Sprint(i...)))
}

func (l *Logger) Warnf(format string, i ...interface{}) {
	l.info(log.WARN, detail(fmt.Sprintf(format, i...)))
}

func (l *Logger) Warnj(j log.JSON) {
	l.info(log.WARN, lager.Data(j))
}

func (l *Logger) Print(i ...interface{}) {
	l.lager.Info(l.action, detail(fmt.Sprint(i...)))
}

func (l *Logger) Printf(format string, i ...interface{}) {
	l.lager.Info(l.action, detail(fmt.Sprintf(format, i...)))
}

func (l *Logger) Printj(j log.JSON) {
	l.lager.Info(l.action, lager.Data(j))
}

func (l *Logger) Error(i ...interface{}) {
	l.lager.Error(l.action, errors.New(fmt.Sprint(i...)))
}

func (l *Logger) Errorf(format string, i ...interface{}) {
	l.lager.Error(l.action, fmt.Errorf(format, i...))
}

func (l *Logger) Errorj(j log.JSON) {
	l.lager.Error(l.action, errors.New("error"), lager.Data(j))
}

func (l *Logger) Fatal(i ...interface{}) {
	l.lager.Fatal(l.action, errors.New(fmt.Sprint(i...)))
}

func (l *Logger) Fatalf(format string, i ...interface{}) {
	l.lager.Fatal(l.action, fmt.Errorf(format, i...))
}

func (l *Logger) Fatalj(j log.JSON) {
	l.lager.Fatal(l.action, errors.New("fatal"), lager.Data(j))
}

func (l *Logger) Panic(i ...interface{}) {
	msg := fmt.Sprint(i...)
	l.lager.Error(l.action, errors.New("panic"), detail(msg))
	panic(msg)
}

func (l *Logger) Panicf(format string, i ...interface{}) {
	l.Panic(fmt.Sprintf(format, i...))
}

func (l *Logger) Panicj(j log.JSON) {
	l.lager.Error(l.action, errors.New("panic"), lager.Data(j))
	panic(fmt.Sprintf("%v", j))
}

func (l *Logger) Level() log.Lvl {
	return l.lvl
}

func (l *Logger) SetLevel(newLvl log.Lvl) {
	l.lvl = newLvl
}

// Prefix is the lager action messages are logged under
func (l *Logger) Prefix() string {
	return l.action
}

func (l *Logger) SetPrefix(p string) {
	l.action = p
}

func (l *Logger) Output() io.Writer {
	return l.output
}

// SetOutput only changes what Output reports, lager sinks decide where
// messages go.
func (l *Logger) SetOutput(w io.Writer) {
	l.output = w
}

func (l *Logger) SetHeader(_ string) {}

// Write receives the JSON access log lines of the logger middleware. Lines
// that are not JSON objects are logged as plain detail.
func (l *Logger) Write(p []byte) (int, error) {
	logMessage := lager.Data{}
	if err := json.Unmarshal(p, &logMessage); err != nil {
		logMessage = detail(string(p))
	}
	l.lager.Info("request", logMessage)
	return len(p), nil
}
