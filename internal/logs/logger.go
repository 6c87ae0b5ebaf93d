package logs

import (
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// Level is shared by every logger built by New so flags can change it after
// the logger exists.
var Level = new(slog.LevelVar)

func init() {
	Level.Set(slog.LevelWarn)
}

func SetVerbose(verbose bool) {
	if verbose {
		Level.Set(slog.LevelDebug)
	} else {
		Level.Set(slog.LevelWarn)
	}
}

// New returns a logger writing text records at Level to w. When file is not
// nil every record, debug included, is also written to it as JSON.
func New(w io.Writer, file io.Writer) *slog.Logger {
	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: Level,
		}),
	}

	if file != nil {
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// Discard is a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
