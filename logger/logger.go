package logger

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// logEntry is a single formatted log message together with the level it was
// written at, ready to be matched against each writer's level.
type logEntry struct {
	log   []byte
	level Level
}

// Logger is a subsystem logger backed by a Backend. It has an independent
// verbosity level, so a subsystem can be made more or less chatty without
// affecting the others sharing the same Backend.
type Logger struct {
	lvl       Level // lvl is read and written atomically, do not access directly
	tag       string
	b         *Backend
	writeChan chan<- logEntry
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32((*uint32)(&l.lvl)))
}

// SetLevel changes the logging level to the passed level.
func (l *Logger) SetLevel(logLevel Level) {
	atomic.StoreUint32((*uint32)(&l.lvl), uint32(logLevel))
}

// Backend returns the backend this logger writes to.
func (l *Logger) Backend() *Backend {
	return l.b
}

// printf outputs a log message to the writers associated with the backend
// after creating a prefix for the given level and tag according to the
// formatHeader function and formatting the provided arguments according to
// the given format specifier.
func (l *Logger) printf(lvl Level, format string, args ...interface{}) {
	if lvl < l.Level() {
		return
	}

	t := time.Now() // get as early as possible

	var file string
	var line int
	if l.b.flag&(LogFlagShortFile|LogFlagLongFile) != 0 {
		file, line = callsite(l.b.flag)
	}

	buf := make([]byte, 0, normalLogSize)
	formatHeader(&buf, t, lvl.String(), l.tag, file, line)
	buf = append(buf, fmt.Sprintf(format, args...)...)
	buf = append(buf, '\n')

	l.write(lvl, buf)
}

// print is like printf but formats its operands in their default formats.
func (l *Logger) print(lvl Level, args ...interface{}) {
	if lvl < l.Level() {
		return
	}

	t := time.Now() // get as early as possible

	var file string
	var line int
	if l.b.flag&(LogFlagShortFile|LogFlagLongFile) != 0 {
		file, line = callsite(l.b.flag)
	}

	buf := make([]byte, 0, normalLogSize)
	formatHeader(&buf, t, lvl.String(), l.tag, file, line)
	buf = append(buf, fmt.Sprint(args...)...)
	buf = append(buf, '\n')

	l.write(lvl, buf)
}

// write sends the formatted entry to the backend. When the backend goroutine
// is not running the entry is written straight to stderr so early messages
// are not lost.
func (l *Logger) write(lvl Level, log []byte) {
	if !l.b.IsRunning() {
		_, _ = os.Stderr.Write(log)
		return
	}
	l.writeChan <- logEntry{log, lvl}
}

// formatHeader writes a log header into buf in the following format:
// 2009-01-23 01:23:23.123 [LVL] TAG: file.go:123
func formatHeader(buf *[]byte, t time.Time, lvl, tag, file string, line int) {
	*buf = append(*buf, t.Format("2006-01-02 15:04:05.000")...)
	*buf = append(*buf, " ["...)
	*buf = append(*buf, lvl...)
	*buf = append(*buf, "] "...)
	*buf = append(*buf, tag...)
	if file != "" {
		*buf = append(*buf, ' ')
		*buf = append(*buf, file...)
		*buf = append(*buf, ':')
		*buf = append(*buf, fmt.Sprintf("%d", line)...)
	}
	*buf = append(*buf, ": "...)
}

// calldepth is the call depth of the callsite function relative to the
// caller of the subsystem logger.
const calldepth = 3

// callsite returns the file name and line number of the callsite to the
// subsystem logger.
func callsite(flag uint32) (string, int) {
	_, file, line, ok := runtime.Caller(calldepth)
	if !ok {
		return "???", 0
	}
	if flag&LogFlagShortFile != 0 {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if os.IsPathSeparator(file[i]) {
				short = file[i+1:]
				break
			}
		}
		file = short
	}
	return file, line
}

// Tracef formats message according to format specifier and writes to
// to log with LevelTrace.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.printf(LevelTrace, format, args...)
}

// Debugf formats message according to format specifier and writes to
// log with LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.printf(LevelDebug, format, args...)
}

// Infof formats message according to format specifier and writes to
// log with LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.printf(LevelInfo, format, args...)
}

// Warnf formats message according to format specifier and writes to
// to log with LevelWarn.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.printf(LevelWarn, format, args...)
}

// Errorf formats message according to format specifier and writes to
// to log with LevelError.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.printf(LevelError, format, args...)
}

// Criticalf formats message according to format specifier and writes to
// log with LevelCritical.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.printf(LevelCritical, format, args...)
}

// Trace formats message using the default formats for its operands
// and writes to log with LevelTrace.
func (l *Logger) Trace(args ...interface{}) {
	l.print(LevelTrace, args...)
}

// Debug formats message using the default formats for its operands
// and writes to log with LevelDebug.
func (l *Logger) Debug(args ...interface{}) {
	l.print(LevelDebug, args...)
}

// Info formats message using the default formats for its operands
// and writes to log with LevelInfo.
func (l *Logger) Info(args ...interface{}) {
	l.print(LevelInfo, args...)
}

// Warn formats message using the default formats for its operands
// and writes to log with LevelWarn.
func (l *Logger) Warn(args ...interface{}) {
	l.print(LevelWarn, args...)
}

// Error formats message using the default formats for its operands
// and writes to log with LevelError.
func (l *Logger) Error(args ...interface{}) {
	l.print(LevelError, args...)
}

// Critical formats message using the default formats for its operands
// and writes to log with LevelCritical.
func (l *Logger) Critical(args ...interface{}) {
	l.print(LevelCritical, args...)
}

// ParseAndSetLogLevel attempts to parse the supplied debug level string and
// set the logger to that level. An error is returned if the string does not
// name a valid level.
func (l *Logger) ParseAndSetLogLevel(logLevel string) error {
	lvl, ok := LevelFromString(logLevel)
	if !ok {
		return fmt.Errorf("the specified debug level [%s] is invalid", strings.TrimSpace(logLevel))
	}
	l.SetLevel(lvl)
	return nil
}
