package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a verbosity threshold; messages below it are dropped.
type Level logging.Level

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// backendLevels maps our levels onto go-logging's, which count in the opposite direction
var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var (
	leveledBackend logging.LeveledBackend
	current        = Notice
)

// Logger is implemented by the module loggers returned from New. Every package
// that reports progress keeps one at package level, named after itself.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for module. Loggers share the sink and level.
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects all log output to sink, keeping the current level.
func SetSink(sink io.Writer) {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	leveledBackend = logging.AddModuleLevel(backend)
	leveledBackend.SetLevel(backendLevels[current], "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the verbosity for every module. Unknown levels are ignored.
func SetLevel(level Level) {
	backendLevel, ok := backendLevels[level]
	if !ok {
		return
	}
	current = level
	leveledBackend.SetLevel(backendLevel, "")
}

// GetLevel returns the verbosity last set with SetLevel.
func GetLevel() Level {
	return current
}

// IsEnabledFor reports whether a message at level from module reaches the sink.
func IsEnabledFor(level Level, module string) bool {
	backendLevel, ok := backendLevels[level]
	if !ok {
		return false
	}
	return leveledBackend.IsEnabledFor(backendLevel, module)
}

func init() {
	SetSink(os.Stderr)
}
