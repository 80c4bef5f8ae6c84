package logging

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Logger is a wrapper around the log.Logger from the charmbracelet/log package.
// Buffer is only set for loggers created with NewTestLogger.
type Logger struct {
	*log.Logger
	Buffer *bytes.Buffer
}

var (
	logger *Logger
	once   sync.Once
	mu     sync.Mutex
)

// New returns a logger writing to w. Debug output includes caller and timestamps.
func New(w io.Writer, debug bool) *Logger {
	base := log.New(w)
	base.SetLevel(log.InfoLevel)
	l := &Logger{Logger: base}
	if debug {
		l.EnableDebug()
	}
	return l
}

// EnableDebug switches l to debug level with caller and timestamp reporting.
func (l *Logger) EnableDebug() {
	l.SetReportCaller(true)
	l.SetReportTimestamp(true)
	l.SetPrefix("schematics")
	l.SetLevel(log.DebugLevel)
}

// CreateLogger sets up the process logger at info level.
func CreateLogger() {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		logger = New(os.Stderr, false)
	})
}

// NewTestLogger returns a debug-level logger that captures output in memory.
func NewTestLogger() *Logger {
	buf := new(bytes.Buffer)
	base := log.New(buf)
	base.SetLevel(log.DebugLevel)
	return &Logger{Logger: base, Buffer: buf}
}

// SetTestLogger replaces the process logger.
func SetTestLogger(l *Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// ResetForTest discards the process logger so the next call recreates it.
func ResetForTest() {
	mu.Lock()
	defer mu.Unlock()
	logger = nil
	once = sync.Once{}
}

// GetOutput returns everything written to a test logger.
func (l *Logger) GetOutput() string {
	if l.Buffer == nil {
		return ""
	}
	return l.Buffer.String()
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{Logger: l.Logger.With(keyvals...), Buffer: l.Buffer}
}

// BaseLogger returns the underlying *log.Logger.
func (l *Logger) BaseLogger() *log.Logger {
	return l.Logger
}

// Debug logs debug messages if debug logging is enabled.
func Debug(msg interface{}, keyvals ...interface{}) {
	GetLogger().Debug(msg, keyvals...)
}

// Info logs informational messages.
func Info(msg interface{}, keyvals ...interface{}) {
	GetLogger().Info(msg, keyvals...)
}

// Warn logs warning messages.
func Warn(msg interface{}, keyvals ...interface{}) {
	GetLogger().Warn(msg, keyvals...)
}

// Error logs error messages.
func Error(msg interface{}, keyvals ...interface{}) {
	GetLogger().Error(msg, keyvals...)
}

// Fatal logs a fatal message and exits the program.
func Fatal(msg interface{}, keyvals ...interface{}) {
	GetLogger().Fatal(msg, keyvals...)
}

// GetLogger returns the Logger instance.
func GetLogger() *Logger {
	EnsureInitialized()
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// EnsureInitialized ensures the logger is initialized before use.
func EnsureInitialized() {
	mu.Lock()
	initialized := logger != nil
	mu.Unlock()
	if !initialized {
		CreateLogger()
	}
}
