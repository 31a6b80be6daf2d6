package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

// Fields son los pares clave/valor que acompañan cada línea.
type Fields map[string]any

type Logger interface {
	With(fields Fields) Logger

	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, fields Fields)
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Output por defecto es os.Stdout.
	Output io.Writer
}

type stdLogger struct {
	out    *sink
	level  Level
	format Format
	base   Fields
}

// sink serializa escrituras entre loggers derivados con With.
type sink struct {
	mu  sync.Mutex
	std *log.Logger
}

func New(opts Options) Logger {
	w := opts.Output
	if w == nil {
		w = os.Stdout
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	base := Fields{}
	if app := strings.TrimSpace(opts.App); app != "" {
		base["app"] = app
	}

	return &stdLogger{
		out:    &sink{std: log.New(w, "", 0)},
		level:  opts.Level,
		format: format,
		base:   base,
	}
}

// Nop descarta todo; útil en tests y cuando no se inyecta logger.
func Nop() Logger {
	return New(Options{Level: Error + 1, Output: io.Discard})
}

func (l *stdLogger) With(fields Fields) Logger {
	if len(fields) == 0 {
		return l
	}
	return &stdLogger{
		out:    l.out,
		level:  l.level,
		format: l.format,
		base:   merge(l.base, fields),
	}
}

func (l *stdLogger) Debug(msg string, fields Fields) { l.log(Debug, msg, fields) }
func (l *stdLogger) Info(msg string, fields Fields)  { l.log(Info, msg, fields) }
func (l *stdLogger) Warn(msg string, fields Fields)  { l.log(Warn, msg, fields) }
func (l *stdLogger) Error(msg string, fields Fields) { l.log(Error, msg, fields) }

func (l *stdLogger) log(lvl Level, msg string, fields Fields) {
	if lvl < l.level {
		return
	}

	entry := merge(l.base, fields)
	entry["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	entry["level"] = lvl.String()
	entry["msg"] = msg

	var line string
	switch l.format {
	case FormatJSON:
		b, err := json.Marshal(entry)
		if err != nil {
			b, _ = json.Marshal(Fields{"level": lvl.String(), "msg": msg, "log_error": err.Error()})
		}
		line = string(b)
	default:
		line = formatText(entry)
	}

	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	l.out.std.Println(line)
}

func merge(a, b Fields) Fields {
	out := make(Fields, len(a)+len(b)+3)
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if strings.TrimSpace(k) == "" {
			continue
		}
		if e, ok := v.(error); ok && e != nil {
			v = e.Error()
		}
		out[k] = v
	}
	return out
}

// formatText deja ts, level y msg al frente; el resto ordenado para salida estable.
func formatText(m Fields) string {
	head := []string{"ts", "level", "msg"}
	keys := make([]string, 0, len(m))
	for k := range m {
		if k == "ts" || k == "level" || k == "msg" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(m))
	for _, k := range append(head, keys...) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, quote(m[k])))
	}
	return strings.Join(parts, " ")
}

func quote(v any) any {
	s, ok := v.(string)
	if !ok || !strings.ContainsAny(s, " \t\"=") {
		return v
	}
	return fmt.Sprintf("%q", s)
}
