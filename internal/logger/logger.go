// Package logger provides console and file loggers for garmentqc commands.
//
// Loggers emit leveled free-form messages plus structured lines for lot and
// sample verdicts. Implementations are thread-safe.
package logger

import (
	"github.com/harrison/garmentqc/internal/models"
)

// Logger is implemented by every garmentqc logger.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
	LogLotVerdict(name string, lotSize int, verdict models.LotVerdict)
	LogSampleVerdict(name string, verdict models.SampleInspectionVerdict)
}

// MultiLogger fans every call out to several loggers.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger; nil loggers are skipped.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

func (m *MultiLogger) LogTrace(message string) {
	for _, l := range m.loggers {
		l.LogTrace(message)
	}
}

func (m *MultiLogger) LogDebug(message string) {
	for _, l := range m.loggers {
		l.LogDebug(message)
	}
}

func (m *MultiLogger) LogInfo(message string) {
	for _, l := range m.loggers {
		l.LogInfo(message)
	}
}

func (m *MultiLogger) LogWarn(message string) {
	for _, l := range m.loggers {
		l.LogWarn(message)
	}
}

func (m *MultiLogger) LogError(message string) {
	for _, l := range m.loggers {
		l.LogError(message)
	}
}

func (m *MultiLogger) LogLotVerdict(name string, lotSize int, verdict models.LotVerdict) {
	for _, l := range m.loggers {
		l.LogLotVerdict(name, lotSize, verdict)
	}
}

func (m *MultiLogger) LogSampleVerdict(name string, verdict models.SampleInspectionVerdict) {
	for _, l := range m.loggers {
		l.LogSampleVerdict(name, verdict)
	}
}

// NoOpLogger is a Logger implementation that discards all log messages.
// Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(message string) {}
func (n *NoOpLogger) LogDebug(message string) {}
func (n *NoOpLogger) LogInfo(message string)  {}
func (n *NoOpLogger) LogWarn(message string)  {}
func (n *NoOpLogger) LogError(message string) {}

func (n *NoOpLogger) LogLotVerdict(name string, lotSize int, verdict models.LotVerdict) {}

func (n *NoOpLogger) LogSampleVerdict(name string, verdict models.SampleInspectionVerdict) {}
