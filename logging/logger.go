package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/crytic/abibin/logging/colors"
	"github.com/rs/zerolog"
)

// GlobalLogger describes a Logger that is disabled by default and is configured by the CLI once the project
// configuration is known. Each package should create its own sub-logger from it.
var GlobalLogger = NewLogger(zerolog.Disabled)

// Logger describes a custom logging object that can log events to any arbitrary channel in structured,
// unstructured, or unstructured-and-colorized formats.
type Logger struct {
	// level describes the log level
	level zerolog.Level

	// context describes the key-value pairs attached to every event emitted by this logger
	context map[string]string

	// structuredLogger emits JSON events to structuredWriters
	structuredLogger zerolog.Logger

	// structuredWriters describes the writers which receive structured (JSON) output
	structuredWriters []io.Writer

	// unstructuredLogger emits human-readable events without ANSI coloring to unstructuredWriters
	unstructuredLogger zerolog.Logger

	// unstructuredWriters describes the writers which receive unstructured output without coloring
	unstructuredWriters []io.Writer

	// unstructuredColorLogger emits human-readable colorized events to unstructuredColorWriters
	unstructuredColorLogger zerolog.Logger

	// unstructuredColorWriters describes the writers which receive unstructured, colorized output
	unstructuredColorWriters []io.Writer
}

// LogFormat describes what format to log in
type LogFormat string

const (
	// STRUCTURED describes that logging should be done in structured JSON format
	STRUCTURED LogFormat = "structured"
	// UNSTRUCTURED describes that logging should be done in an unstructured format
	UNSTRUCTURED LogFormat = "unstructured"
)

// StructuredLogInfo describes a key-value mapping that can be used to log structured data
type StructuredLogInfo map[string]any

// NewLogger will create a new Logger object with a specific log level. The Logger has no writers until AddWriter is
// called, so nothing is emitted by default.
func NewLogger(level zerolog.Level) *Logger {
	l := &Logger{
		level:   level,
		context: make(map[string]string),
	}
	l.rebuild()
	return l
}

// NewSubLogger will create a new Logger with unique context in the form of a key-value pair. The expected use of this
// function is for each package to have its own logger so that log output is "grep-able" by module.
func (l *Logger) NewSubLogger(key string, value string) *Logger {
	context := make(map[string]string, len(l.context)+1)
	for k, v := range l.context {
		context[k] = v
	}
	context[key] = value

	sub := &Logger{
		level:                    l.level,
		context:                  context,
		structuredWriters:        l.structuredWriters,
		unstructuredWriters:      l.unstructuredWriters,
		unstructuredColorWriters: l.unstructuredColorWriters,
	}
	sub.rebuild()
	return sub
}

// AddWriter will add a writer to the list of channels where log output will be sent. Adding a writer which is already
// registered for the given format and coloring is a no-op.
func (l *Logger) AddWriter(writer io.Writer, format LogFormat, colored bool) {
	writers := l.writersFor(format, colored)
	for _, w := range *writers {
		if w == writer {
			return
		}
	}
	*writers = append(*writers, writer)
	l.rebuild()
}

// RemoveWriter will remove a writer from the list of writers that the logger manages. If the writer does not exist,
// this function is a no-op.
func (l *Logger) RemoveWriter(writer io.Writer, format LogFormat, colored bool) {
	writers := l.writersFor(format, colored)
	for i, w := range *writers {
		if w == writer {
			*writers = append((*writers)[:i], (*writers)[i+1:]...)
			l.rebuild()
			return
		}
	}
}

// Level will get the log level of the Logger
func (l *Logger) Level() zerolog.Level {
	return l.level
}

// SetLevel will update the log level of the Logger
func (l *Logger) SetLevel(level zerolog.Level) {
	l.level = level
	l.rebuild()
}

// Trace is a wrapper function that will log a trace event
func (l *Logger) Trace(args ...any) {
	l.emit(zerolog.TraceLevel, args...)
}

// Debug is a wrapper function that will log a debug event
func (l *Logger) Debug(args ...any) {
	l.emit(zerolog.DebugLevel, args...)
}

// Info is a wrapper function that will log an info event
func (l *Logger) Info(args ...any) {
	l.emit(zerolog.InfoLevel, args...)
}

// Warn is a wrapper function that will log a warning event
func (l *Logger) Warn(args ...any) {
	l.emit(zerolog.WarnLevel, args...)
}

// Error is a wrapper function that will log an error event
func (l *Logger) Error(args ...any) {
	l.emit(zerolog.ErrorLevel, args...)
}

// Panic is a wrapper function that will log a panic event and then panic
func (l *Logger) Panic(args ...any) {
	_, plainMsg, err, _ := buildMsgs(args...)
	l.emit(zerolog.ErrorLevel, args...)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", plainMsg, err))
	}
	panic(plainMsg)
}

// emit builds the messages for the provided arguments and sends an event of the given level to every logger.
func (l *Logger) emit(level zerolog.Level, args ...any) {
	coloredMsg, plainMsg, err, info := buildMsgs(args...)
	debug := l.level <= zerolog.DebugLevel

	sendEvent(l.structuredLogger.WithLevel(level), plainMsg, err, info, debug)
	sendEvent(l.unstructuredLogger.WithLevel(level), plainMsg, err, info, debug)
	sendEvent(l.unstructuredColorLogger.WithLevel(level), coloredMsg, err, info, debug)
}

// writersFor returns a pointer to the writer list for the given format and coloring.
func (l *Logger) writersFor(format LogFormat, colored bool) *[]io.Writer {
	if format == STRUCTURED {
		return &l.structuredWriters
	}
	if colored {
		return &l.unstructuredColorWriters
	}
	return &l.unstructuredWriters
}

// rebuild recreates the underlying zerolog loggers from the current writers, level and context.
func (l *Logger) rebuild() {
	// Structured output carries timestamps and every context field
	structuredCtx := zerolog.New(zerolog.MultiLevelWriter(l.structuredWriters...)).Level(l.levelFor(l.structuredWriters)).With().Timestamp()
	for k, v := range l.context {
		structuredCtx = structuredCtx.Str(k, v)
	}
	l.structuredLogger = structuredCtx.Logger()

	// Unstructured output goes through console writers
	unstructured := make([]io.Writer, 0, len(l.unstructuredWriters))
	for _, w := range l.unstructuredWriters {
		unstructured = append(unstructured, setupDefaultFormatting(zerolog.ConsoleWriter{Out: w, NoColor: true}, l.level))
	}
	l.unstructuredLogger = l.withContext(zerolog.New(zerolog.MultiLevelWriter(unstructured...)).Level(l.levelFor(unstructured)))

	colored := make([]io.Writer, 0, len(l.unstructuredColorWriters))
	for _, w := range l.unstructuredColorWriters {
		colored = append(colored, setupDefaultFormatting(zerolog.ConsoleWriter{Out: w}, l.level))
	}
	l.unstructuredColorLogger = l.withContext(zerolog.New(zerolog.MultiLevelWriter(colored...)).Level(l.levelFor(colored)))
}

// levelFor returns the logger level, or zerolog.Disabled if there are no writers to emit to.
func (l *Logger) levelFor(writers []io.Writer) zerolog.Level {
	if len(writers) == 0 {
		return zerolog.Disabled
	}
	return l.level
}

// withContext attaches the logger context fields to the provided zerolog.Logger
func (l *Logger) withContext(logger zerolog.Logger) zerolog.Logger {
	ctx := logger.With()
	for k, v := range l.context {
		ctx = ctx.Str(k, v)
	}
	return ctx.Logger()
}

// buildMsgs describes a function that takes in a variadic list of arguments of any type and returns two strings and,
// optionally, an error and a StructuredLogInfo object. The first string will be a colorized-string that can be used for
// console logging while the second string will be a non-colorized one that can be used for file/structured logging.
func buildMsgs(args ...any) (string, string, error, StructuredLogInfo) {
	if len(args) == 0 {
		return "", "", nil, nil
	}

	colorCtx := colors.Reset
	coloredOutput := make([]string, 0, len(args))
	plainOutput := make([]string, 0, len(args))
	var info StructuredLogInfo
	var err error

	for _, arg := range args {
		switch t := arg.(type) {
		case colors.ColorFunc:
			// Switch the current color context
			colorCtx = t
		case StructuredLogInfo:
			// Only one structured log info can be provided for each log message
			info = t
		case error:
			// Only one error can be provided for each log message
			err = t
		default:
			coloredOutput = append(coloredOutput, colorCtx(t))
			plainOutput = append(plainOutput, fmt.Sprintf("%v", t))
		}
	}

	return strings.Join(coloredOutput, ""), strings.Join(plainOutput, ""), err, info
}

// sendEvent chains the error and structured info to the event and sends it. If debug is set, a stack trace is
// attached to errors which carry one.
func sendEvent(event *zerolog.Event, msg string, err error, info StructuredLogInfo, debug bool) {
	if event == nil {
		return
	}
	if err != nil {
		event = event.Err(err)
		if debug {
			event = event.Stack()
		}
	}
	if info != nil {
		event = event.Any("info", info)
	}
	event.Msg(msg)
}

// setupDefaultFormatting will update the console writer's formatting to the abibin standard
func setupDefaultFormatting(writer zerolog.ConsoleWriter, level zerolog.Level) zerolog.ConsoleWriter {
	// Get rid of the timestamp for console output
	writer.FormatTimestamp = func(i any) string {
		return ""
	}

	// Define a custom format for each level
	writer.FormatLevel = func(i any) string {
		levelStr, _ := i.(string)
		parsed, err := zerolog.ParseLevel(levelStr)
		if err != nil {
			return levelStr
		}

		switch parsed {
		case zerolog.TraceLevel:
			return colors.CyanBold(zerolog.LevelTraceValue)
		case zerolog.DebugLevel:
			return colors.BlueBold(zerolog.LevelDebugValue)
		case zerolog.InfoLevel:
			return colors.GreenBold(colors.LEFT_ARROW)
		case zerolog.WarnLevel:
			return colors.YellowBold(zerolog.LevelWarnValue)
		case zerolog.ErrorLevel:
			return colors.RedBold(zerolog.LevelErrorValue)
		case zerolog.FatalLevel:
			return colors.RedBold(zerolog.LevelFatalValue)
		case zerolog.PanicLevel:
			return colors.RedBold(zerolog.LevelPanicValue)
		default:
			return levelStr
		}
	}

	// Above debug level, context and structured info are noise on the console
	if level > zerolog.DebugLevel {
		writer.FieldsExclude = []string{"module", "build", "info"}
	}

	return writer
}
