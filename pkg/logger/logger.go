package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type LogLevel string

const (
	DEBUG LogLevel = "DEBUG"
	INFO  LogLevel = "INFO"
	WARN  LogLevel = "WARN"
	ERROR LogLevel = "ERROR"
)

var levelRank = map[LogLevel]int{
	DEBUG: 0,
	INFO:  1,
	WARN:  2,
	ERROR: 3,
}

// Logger writes leveled, structured event lines. Context fields set via
// WithContext are attached to every entry the derived logger emits.
type Logger struct {
	level      LogLevel
	jsonFormat bool
	out        io.Writer
	context    map[string]string
	mu         *sync.Mutex
}

var (
	global   *Logger
	initOnce sync.Once
)

// Init configures the process-wide logger. A nil out discards all output,
// which is what tests want.
func Init(level LogLevel, jsonFormat bool, out io.Writer) {
	if out == nil {
		out = io.Discard
	}
	if _, ok := levelRank[normalize(level)]; !ok {
		level = INFO
	}
	global = &Logger{
		level:      normalize(level),
		jsonFormat: jsonFormat,
		out:        out,
		context:    map[string]string{},
		mu:         &sync.Mutex{},
	}
}

func GetLogger() *Logger {
	initOnce.Do(func() {
		if global == nil {
			Init(INFO, false, os.Stdout)
		}
	})
	return global
}

// WithContext derives a logger from the global one with an extra context field.
func WithContext(key, value string) *Logger {
	return GetLogger().WithContext(key, value)
}

func (l *Logger) WithContext(key, value string) *Logger {
	ctx := make(map[string]string, len(l.context)+1)
	for k, v := range l.context {
		ctx[k] = v
	}
	ctx[key] = value
	return &Logger{
		level:      l.level,
		jsonFormat: l.jsonFormat,
		out:        l.out,
		context:    ctx,
		mu:         l.mu,
	}
}

func (l *Logger) Debug(event string, kv ...interface{}) { l.log(DEBUG, event, kv...) }
func (l *Logger) Info(event string, kv ...interface{})  { l.log(INFO, event, kv...) }
func (l *Logger) Warn(event string, kv ...interface{})  { l.log(WARN, event, kv...) }
func (l *Logger) Error(event string, kv ...interface{}) { l.log(ERROR, event, kv...) }

func (l *Logger) log(level LogLevel, event string, kv ...interface{}) {
	if levelRank[level] < levelRank[l.level] {
		return
	}

	fields := make(map[string]string, len(l.context)+len(kv)/2)
	for k, v := range l.context {
		fields[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		fields[fmt.Sprint(kv[i])] = fmt.Sprint(kv[i+1])
	}

	ts := time.Now().UTC().Format(time.RFC3339)

	var line string
	if l.jsonFormat {
		entry := map[string]string{
			"timestamp": ts,
			"level":     string(level),
			"event":     event,
		}
		for k, v := range fields {
			entry[k] = v
		}
		data, err := json.Marshal(entry)
		if err != nil {
			return
		}
		line = string(data)
	} else {
		var b strings.Builder
		fmt.Fprintf(&b, "%s level=%s event=%s", ts, level, event)
		for k, v := range fields {
			fmt.Fprintf(&b, " %s=%q", k, v)
		}
		line = b.String()
	}

	l.mu.Lock()
	fmt.Fprintln(l.out, line)
	l.mu.Unlock()
}

func normalize(level LogLevel) LogLevel {
	return LogLevel(strings.ToUpper(strings.TrimSpace(string(level))))
}
