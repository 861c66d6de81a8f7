package main

import (
	"flag"
	"fmt"
	"log/slog"
)

var (
	flagSkipInvalid bool   // продолжать обработку после ошибочного пакета
	flagLogLevel    string // уровень логирования
)

func init() {
	flag.BoolVar(&flagSkipInvalid, "skip-invalid", false, "log invalid packages and continue with the next one")
	flag.StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn or error")
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return level, nil
}
