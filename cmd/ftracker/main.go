package main

//go:generate go build -o=../../bin/ftracker

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Yandex-Practicum/go-ftracker/internal/report"
	"github.com/Yandex-Practicum/go-ftracker/internal/sensor"
)

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "ftracker: "+format+"\n", args...)
	os.Exit(2)
}

func main() {
	flag.Parse()

	level, err := parseLogLevel(flagLogLevel)
	if err != nil {
		fatalf("%s", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	os.Exit(run(context.Background(), os.Stdout, logger, sensor.SamplePackages(), flagSkipInvalid))
}

// run prints summaries of packages to out and returns the process exit code:
// 0 when every package was reported, 1 when any of them failed.
func run(ctx context.Context, out io.Writer, logger *slog.Logger, packages []sensor.Package, skipInvalid bool) int {
	p := report.NewProcessor(out, logger, report.WithSkipInvalid(skipInvalid))

	stats, err := p.Process(ctx, packages)
	logger.Debug("packages processed", slog.Int("processed", stats.Processed), slog.Int("failed", stats.Failed))
	if err != nil {
		logger.Error("processing failed", slog.Any("error", err))
		return 1
	}
	return 0
}
