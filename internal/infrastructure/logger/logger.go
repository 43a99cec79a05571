package logger

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

var (
	Info  *log.Logger
	Error *log.Logger
	Debug *log.Logger
	Warn  *log.Logger

	output io.Writer
)

const logFlags = log.Ldate | log.Ltime | log.LUTC | log.Lshortfile

func init() {
	setup(os.Stdout, isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

func setup(out io.Writer, color bool) {
	output = out
	Info = log.New(out, prefix("INFO", "\x1b[32m", color), logFlags)
	Error = log.New(out, prefix("ERROR", "\x1b[31m", color), logFlags)
	Debug = log.New(out, prefix("DEBUG", "\x1b[90m", color), logFlags)
	Warn = log.New(out, prefix("WARN", "\x1b[33m", color), logFlags)
}

func prefix(level, ansi string, color bool) string {
	if !color {
		return level + ": "
	}
	return ansi + level + "\x1b[0m: "
}

// SetLevel silences every logger below level ("debug", "info", "warn", "error").
// Unknown values leave all loggers enabled.
func SetLevel(level string) {
	for _, l := range []*log.Logger{Debug, Info, Warn, Error} {
		l.SetOutput(output)
	}

	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		Warn.SetOutput(io.Discard)
		fallthrough
	case "warn", "warning":
		Info.SetOutput(io.Discard)
		fallthrough
	case "info":
		Debug.SetOutput(io.Discard)
	}
}
