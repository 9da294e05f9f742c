package main

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	logFormatLogfmt = "logfmt"
	logFormatJSON   = "json"
)

func (f FlagsLogs) levelOption() level.Option {
	switch f.Level {
	case "error":
		return level.AllowError()
	case "info":
		return level.AllowInfo()
	case "debug":
		return level.AllowDebug()
	default:
		return level.AllowWarn()
	}
}

// NewLogger returns a leveled logger writing to w.
func (f FlagsLogs) NewLogger(w io.Writer) log.Logger {
	var logger log.Logger
	if f.Format == logFormatJSON {
		logger = log.NewJSONLogger(log.NewSyncWriter(w))
	} else {
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
	}
	logger = level.NewFilter(logger, f.levelOption())
	return log.With(logger, "name", programName, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}
