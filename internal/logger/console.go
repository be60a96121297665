package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/harrison/garmentqc/internal/models"
)

// ConsoleLogger logs messages and verdicts to a writer with timestamps.
// All output is prefixed with [HH:MM:SS] timestamps.
// Color output is automatically enabled for terminal output (os.Stdout/os.Stderr).
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
	colors      *colorScheme
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
		colors:      newColorScheme(),
	}
}

// SetColor forces color output on or off.
func (cl *ConsoleLogger) SetColor(enabled bool) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	cl.colorOutput = enabled
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if w == os.Stdout || w == os.Stderr {
		// color.NoColor honours NO_COLOR and non-TTY stdout
		return !color.NoColor
	}
	return false
}

// LogTrace logs a trace-level message (most verbose).
// Format: "[HH:MM:SS] [TRACE] <message>"
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
// Format: "[HH:MM:SS] [DEBUG] <message>"
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
// Format: "[HH:MM:SS] [INFO] <message>"
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
// Format: "[HH:MM:SS] [WARN] <message>"
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
// Format: "[HH:MM:SS] [ERROR] <message>"
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	cl.writeLocked(level, message)
}

// writeLocked writes one line; the caller holds the mutex.
func (cl *ConsoleLogger) writeLocked(level string, message string) {
	if !shouldLog(cl.logLevel, lowerLevel(level)) {
		return
	}
	tag := level
	if cl.colorOutput {
		tag = cl.colors.level(level)
	}
	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", timestamp(), tag, message)
}

// LogLotVerdict logs a lot verdict at INFO level. A failed lot also gets a
// WARN line so it survives a warn-level filter.
func (cl *ConsoleLogger) LogLotVerdict(name string, lotSize int, verdict models.LotVerdict) {
	if cl.writer == nil {
		return
	}
	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	status := string(verdict.Status)
	if cl.colorOutput {
		status = cl.colors.lotStatus(verdict.Status)
	}
	cl.writeLocked("INFO", formatLotVerdict(name, lotSize, verdict, status))
	if verdict.Status == models.LotFailed {
		cl.writeLocked("WARN", fmt.Sprintf("%s rejected", lotLabel(name, lotSize)))
	}
}

// LogSampleVerdict logs the sample summary at INFO and each point at DEBUG.
// A failed sample also gets a WARN line.
func (cl *ConsoleLogger) LogSampleVerdict(name string, verdict models.SampleInspectionVerdict) {
	if cl.writer == nil {
		return
	}
	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	status := string(verdict.Status)
	if cl.colorOutput {
		status = cl.colors.sampleStatus(verdict.Status)
	}
	cl.writeLocked("INFO", formatSampleVerdict(name, verdict, status))
	if verdict.Status == models.SampleFailed {
		cl.writeLocked("WARN", fmt.Sprintf("%s rejected", sampleLabel(name)))
	}

	for _, r := range verdict.Results {
		pointStatus := string(r.Status)
		if cl.colorOutput {
			pointStatus = cl.colors.measurementStatus(r.Status)
		}
		cl.writeLocked("DEBUG", formatMeasurementResult(r, pointStatus))
	}
}
