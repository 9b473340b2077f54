// Package log is the leveled logging front end for the pathtracer command.
// Output defaults to Notice; the CLI's -v flag lowers it to Info and --vv to
// Debug. The renderer packages only see core.Logger and reach this package
// through the Printf adapter, so their progress lines appear at Info.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/op/go-logging"
)

type Level logging.Level

// Verbosity levels accepted by SetLevel, most verbose first.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// Every line carries the time, the logger name and the level.
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// Backend shared by every named logger; SetLevel adjusts it in place.
var leveledBackend logging.LeveledBackend

// Logger is the leveled API handed to the command's own code.
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

// New returns the logger for one part of the program, e.g. "main" or "renderer".
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all log output to sink. Tests use it to capture lines.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(logging.INFO, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the minimum level written. Render progress is Info, so it is
// hidden until -v is given.
func SetLevel(level Level) {
	var loggerLevel logging.Level

	switch level {
	case Debug:
		loggerLevel = logging.DEBUG
	case Info:
		loggerLevel = logging.INFO
	case Notice:
		loggerLevel = logging.NOTICE
	case Warning:
		loggerLevel = logging.WARNING
	case Error:
		loggerLevel = logging.ERROR
	}

	leveledBackend.SetLevel(loggerLevel, "")
}

// printfLogger adapts a leveled logger to the Printf-style core.Logger used by
// the rendering packages.
type printfLogger struct {
	logger Logger
}

// Printf logs at Info level, or at Warning level for messages that start with
// "Warning". The trailing newline is dropped since the backend adds its own.
func (p printfLogger) Printf(format string, args ...interface{}) {
	msg := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	if rest, ok := strings.CutPrefix(msg, "Warning: "); ok {
		p.logger.Warning(rest)
		return
	}
	p.logger.Info(msg)
}

// Printf returns a core.Logger that writes through the named logger.
func Printf(name string) core.Logger {
	return printfLogger{logger: New(name)}
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
