package logger

import (
	"io"
	"os"

	"characterdex/internal/config"
	"characterdex/internal/utils/logger/handlers/slogpretty"

	"golang.org/x/exp/slog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type options struct {
	out   io.Writer
	file  string
	level *slog.Level
}

type Option func(*options)

// WithOutput заменяет stdout на произвольный writer.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithFile дублирует вывод в файл с ротацией.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithLevel переопределяет уровень окружения ("debug", "info", "warn", "error").
// Пустая или нераспознанная строка оставляет уровень по умолчанию.
func WithLevel(level string) Option {
	return func(o *options) {
		var l slog.Level
		if level == "" || l.UnmarshalText([]byte(level)) != nil {
			return
		}
		o.level = &l
	}
}

// New создает логгер в зависимости от окружения:
// local - цветной вывод с уровнем debug, dev - JSON debug, prod - JSON info.
func New(env string, opts ...Option) *slog.Logger {
	o := options{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	out := o.out
	if o.file != "" {
		out = io.MultiWriter(out, &lumberjack.Logger{
			Filename:   o.file,
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		})
	}

	level := slog.LevelInfo
	if env == config.EnvLocal || env == config.EnvDev {
		level = slog.LevelDebug
	}
	if o.level != nil {
		level = *o.level
	}

	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog(out, level)
	default:
		log = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}),
		)
	}

	return log
}

func setupPrettySlog(out io.Writer, level slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	handler := opts.NewPrettyHandler(out)

	return slog.New(handler)
}

// Err оборачивает ошибку в атрибут slog.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
