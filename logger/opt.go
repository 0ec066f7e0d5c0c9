package logger

import "log"

// A LoggerOptFn configures a ConveyLogger under construction in New.
type LoggerOptFn func(*ConveyLogger)

// WithEnv names the environment the logger runs in,
// which tags events shipped to Sentry.
func WithEnv(env string) LoggerOptFn {
	return func(l *ConveyLogger) {
		l.env = env
	}
}

// WithLevel sets the minimum level a message must clear to be written.
// LogLevelUnk is ignored, keeping whatever level New resolved.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(l *ConveyLogger) {
		if level == LogLevelUnk {
			return
		}

		l.ll = level
	}
}

// WithLogger swaps in the *log.Logger messages write through,
// most usefully one pointed at a buffer in tests.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(l *ConveyLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) LoggerOptFn {
	return func(l *ConveyLogger) {
		l.skip = skip
	}
}
