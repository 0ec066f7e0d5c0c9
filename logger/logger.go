package logger

import (
	"log"
	"os"
	"path"
	"regexp"
	"runtime"
	"strings"

	"github.com/fatih/color"
)

// callerFrames is how many frames sit between runtime.Caller and the
// code calling a leveled method.
const callerFrames = 2

var conveyPathRegex = regexp.MustCompile("convey.*$")

// The Logger interface defines the levels a logging can occur at.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Fatal(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)

	LogLevel() LogLevel
}

// The SkipLogger interface defines a Logger that scrolls back
// the number of frames provided in order to ascertain the call site.
type SkipLogger interface {
	AddSkip(i int) SkipLogger
	Skip() int
	Logger
}

type LogLevel int

const (
	LogLevelUnk LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

// NewLogLevel parses val into a LogLevel, ignoring case and
// surrounding whitespace. Unrecognized values parse as LogLevelUnk.
func NewLogLevel(val string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(val)) {
	case "DEBUG":
		return LogLevelDebug
	case "INFO":
		return LogLevelInfo
	case "WARN":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	case "FATAL":
		return LogLevelFatal
	default:
		return LogLevelUnk
	}
}

func (ll LogLevel) String() string {
	switch ll {
	case LogLevelDebug:
		return "[DEBUG]"
	case LogLevelInfo:
		return "[INFO]"
	case LogLevelWarn:
		return "[WARN]"
	case LogLevelError:
		return "[ERROR]"
	case LogLevelFatal:
		return "[FATAL]"
	default:
		return "[UNK]"
	}
}

// paint picks the color a level renders in.
func (ll LogLevel) paint() func(string, ...any) string {
	switch ll {
	case LogLevelDebug:
		return color.WhiteString
	case LogLevelInfo:
		return color.BlueString
	case LogLevelWarn:
		return color.YellowString
	case LogLevelFatal:
		return color.MagentaString
	default:
		return color.RedString
	}
}

// ConveyLogger implements Logger using log.
type ConveyLogger struct {
	skip int
	env  string
	l    *log.Logger
	ll   LogLevel
}

// New constructs a ConveyLogger from the environment, then from opts.
//
// ENVIRONMENT names the deploy environment (default DEVELOPMENT) and
// LOG_LEVEL the minimum level written (default INFO); opts override
// both. Logs print to os.Stdout using the std lib log pkg. When
// SENTRY_DSN is set the returned Logger also ships errors to Sentry.
func New(opts ...LoggerOptFn) Logger {
	l := &ConveyLogger{
		env: envOr("ENVIRONMENT", "DEVELOPMENT"),
		l:   log.New(os.Stdout, "", log.LstdFlags),
		ll:  LogLevelInfo,
	}
	if ll := NewLogLevel(os.Getenv("LOG_LEVEL")); ll != LogLevelUnk {
		l.ll = ll
	}

	for _, opt := range opts {
		opt(l)
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		l.Info("SENTRY_DSN set, configuring SentryLogger", nil)
		return NewSentryLogger(l, dsn)
	}

	return l
}

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
//
// Use Skip to get the current skip amount
// when needing to add to it with AddSkip.
func (l *ConveyLogger) AddSkip(i int) SkipLogger {
	newl := *l
	newl.skip = i
	return &newl
}

// Debug writes a debug log.
func (l *ConveyLogger) Debug(msg string, ctx *LogContext) { l.write(LogLevelDebug, msg, ctx) }

// Error writes an error log.
func (l *ConveyLogger) Error(msg string, ctx *LogContext) { l.write(LogLevelError, msg, ctx) }

// Fatal writes a fatal log.
func (l *ConveyLogger) Fatal(msg string, ctx *LogContext) { l.write(LogLevelFatal, msg, ctx) }

// Info writes an info log.
func (l *ConveyLogger) Info(msg string, ctx *LogContext) { l.write(LogLevelInfo, msg, ctx) }

// Warn writes a warning log.
func (l *ConveyLogger) Warn(msg string, ctx *LogContext) { l.write(LogLevelWarn, msg, ctx) }

// LogLevel returns the LogLevel set for the ConveyLogger.
func (l *ConveyLogger) LogLevel() LogLevel { return l.ll }

// Skip returns the current amount of frames to scroll back
// when logging a message.
func (l *ConveyLogger) Skip() int { return l.skip }

// write prints the log line when level clears the configured minimum,
// prefixed with the call site and trailed by any attached context.
func (l *ConveyLogger) write(level LogLevel, msg string, ctx *LogContext) {
	if level < l.ll {
		return
	}

	// NOTE: scroll past the leveled method and write itself,
	// plus however many frames the ConveyLogger is configured with.
	_, file, line, _ := runtime.Caller(callerFrames + l.skip)

	site := conveyPathRegex.FindString(file)
	if site == "" {
		// NOTE: fall back to the file and the directory it is in,
		// e.g. /home/dev/my-project/main.go => my-project/main.go
		dir, base := path.Split(file)
		site = path.Base(dir) + string(os.PathSeparator) + base
	}

	out := level.paint()("%s %s:%d '%s'", level, site, line, msg)
	if ctx == nil {
		l.l.Println(out)
		return
	}

	l.l.Println(out, "log_context:", ctx)
}

func envOr(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
