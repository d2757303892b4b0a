package log

import (
	"log/slog"

	"github.com/meoying/ifxbridge/internal/datasource"
)

type logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	l *slog.Logger
}

type Option func(*Options)

func WithLogger(l *slog.Logger) Option {
	return func(opts *Options) {
		opts.l = l
	}
}

// NewDataSource 给 DataSource 套一层日志：
// 每条提交的字面 SQL 打 Debug，失败打 Error。
func NewDataSource(ds datasource.DataSource, opts ...Option) datasource.DataSource {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	if options.l == nil {
		options.l = slog.Default()
	}
	return &dsWrapper{ds: ds, logger: options.l}
}
