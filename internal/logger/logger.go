package logger

import (
	"fmt"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

var logger = clog.NewWithOptions(os.Stdout, clog.Options{
	ReportTimestamp: true,
	TimeFormat:      "2006-01-02 15:04:05",
	Level:           clog.InfoLevel,
})

func SetLevel(level string) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		logger.SetLevel(clog.DebugLevel)
	case "INFO":
		logger.SetLevel(clog.InfoLevel)
	case "WARN":
		logger.SetLevel(clog.WarnLevel)
	case "ERROR":
		logger.SetLevel(clog.ErrorLevel)
	}
}

// Configure applies the logging section of the configuration: level,
// format ("text" or "json") and output ("stdout", "stderr" or a file path).
func Configure(level, format, output string) error {
	SetLevel(level)

	switch strings.ToLower(format) {
	case "", "text":
		logger.SetFormatter(clog.TextFormatter)
	case "json":
		logger.SetFormatter(clog.JSONFormatter)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	switch output {
	case "", "stdout":
		logger.SetOutput(os.Stdout)
	case "stderr":
		logger.SetOutput(os.Stderr)
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log output %q: %w", output, err)
		}
		logger.SetOutput(f)
	}

	return nil
}

func Debug(format string, v ...any) {
	logger.Debug(fmt.Sprintf(format, v...))
}

func Info(format string, v ...any) {
	logger.Info(fmt.Sprintf(format, v...))
}

func Warn(format string, v ...any) {
	logger.Warn(fmt.Sprintf(format, v...))
}

func Error(format string, v ...any) {
	logger.Error(fmt.Sprintf(format, v...))
}
