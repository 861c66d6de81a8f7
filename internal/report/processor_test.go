package report_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yandex-Practicum/go-ftracker/internal/report"
	"github.com/Yandex-Practicum/go-ftracker/internal/sensor"
	"github.com/Yandex-Practicum/go-ftracker/internal/training"
)

var sampleLines = []string{
	"Тип тренировки: Swimming; Длительность: 1 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
	"Тип тренировки: Running; Длительность: 1 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805.",
	"Тип тренировки: SportsWalking; Длительность: 1 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
}

func newLogger(t *testing.T, buf *bytes.Buffer) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func lines(out string) []string {
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestProcessSamplePackages(t *testing.T) {
	var out, logs bytes.Buffer
	p := report.NewProcessor(&out, newLogger(t, &logs))

	stats, err := p.Process(context.Background(), sensor.SamplePackages())
	require.NoError(t, err)
	assert.Equal(t, report.Stats{Processed: 3}, stats)
	assert.Equal(t, sampleLines, lines(out.String()))
	assert.Contains(t, logs.String(), "training computed")
}

func TestProcessAbortsOnFirstFailure(t *testing.T) {
	var out, logs bytes.Buffer
	p := report.NewProcessor(&out, newLogger(t, &logs))

	packages := []sensor.Package{
		sensor.SamplePackages()[0],
		{Code: "XYZ", Data: []float64{1, 2, 3}},
		sensor.SamplePackages()[1],
	}
	stats, err := p.Process(context.Background(), packages)
	require.Error(t, err)
	assert.ErrorIs(t, err, sensor.ErrUnknownWorkoutType)

	var pkgErr *report.PackageError
	require.True(t, errors.As(err, &pkgErr))
	assert.Equal(t, 1, pkgErr.Index)
	assert.Equal(t, "XYZ", pkgErr.Code)

	assert.Equal(t, report.Stats{Processed: 1, Failed: 1}, stats)
	assert.Equal(t, sampleLines[:1], lines(out.String()), "После ошибки обработка должна остановиться")
}

func TestProcessSkipInvalid(t *testing.T) {
	var out, logs bytes.Buffer
	p := report.NewProcessor(&out, newLogger(t, &logs), report.WithSkipInvalid(true))

	packages := []sensor.Package{
		{Code: "RUN", Data: []float64{15000, 1}},
		sensor.SamplePackages()[0],
		{Code: "WLK", Data: []float64{9000, 0, 75, 180}},
		sensor.SamplePackages()[1],
		sensor.SamplePackages()[2],
	}
	stats, err := p.Process(context.Background(), packages)
	require.Error(t, err)
	assert.ErrorIs(t, err, sensor.ErrArityMismatch)
	assert.ErrorIs(t, err, training.ErrInvalidInput)

	assert.Equal(t, report.Stats{Processed: 3, Failed: 2}, stats)
	assert.Equal(t, sampleLines, lines(out.String()))
	assert.Equal(t, 2, strings.Count(logs.String(), "skipping package"))
}

func TestProcessCanceled(t *testing.T) {
	var out, logs bytes.Buffer
	p := report.NewProcessor(&out, newLogger(t, &logs), report.WithSkipInvalid(true))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := p.Process(ctx, sensor.SamplePackages())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stats.Processed)
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestProcessWriteError(t *testing.T) {
	var logs bytes.Buffer
	p := report.NewProcessor(failingWriter{}, newLogger(t, &logs))

	stats, err := p.Process(context.Background(), sensor.SamplePackages())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write summary: disk full")
	assert.Equal(t, report.Stats{Failed: 1}, stats)
}
