package broker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

// leveledLogger bridges kafka-go's printf logging into slog.
type leveledLogger struct {
	l     *slog.Logger
	level slog.Level
}

func (l leveledLogger) Printf(format string, v ...any) {
	l.l.Log(context.Background(), l.level, fmt.Sprintf(format, v...))
}

// kafkaLoggers returns the info and error loggers for kafka readers and writers.
// Client chatter goes to debug, the library is noisy at info.
func kafkaLoggers(l *slog.Logger) (kafka.Logger, kafka.Logger) {
	return leveledLogger{l: l, level: slog.LevelDebug}, leveledLogger{l: l, level: slog.LevelError}
}
