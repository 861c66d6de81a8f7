package ftrackertest

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/context"

	"github.com/Yandex-Practicum/go-ftracker/internal/fork"
)

const runProcessTimeout = time.Second * 10

type Env struct {
	fixenv.EnvT
	assert.Assertions
	Ctx context.Context

	t testing.TB
}

func New(t testing.TB) *Env {
	ctx, ctxCancel := context.WithCancel(context.Background())
	t.Cleanup(ctxCancel)

	res := Env{
		EnvT:       *fixenv.NewEnv(t),
		Assertions: *assert.New(t),
		t:          t,
		Ctx:        ctx,
	}
	return &res
}

func (e *Env) Fatalf(format string, args ...any) {
	e.t.Fatalf(format, args...)
}

func (e *Env) Logf(format string, args ...any) {
	e.t.Logf(format, args...)
}

// RunResult is what a finished ftracker process left behind.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Lines returns stdout split into lines without the trailing newline.
func (r RunResult) Lines() []string {
	out := strings.TrimSuffix(r.Stdout, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func ExistPath(e *Env, filePath string) string {
	return fixenv.Cache(&e.EnvT, filePath, nil, func() (string, error) {
		e.Logf("Проверяю наличие файла: %q", filePath)
		_, err := os.Stat(filePath)
		if err != nil {
			return "", err
		}
		return filePath, nil
	})
}

func BinaryPath(e *Env) string {
	return ExistPath(e, flagBinaryPath)
}

func RunFtracker(e *Env, args ...string) RunResult {
	command := BinaryPath(e)
	cacheKey := append([]string{command}, args...)
	return fixenv.Cache(&e.EnvT, cacheKey, nil, func() (RunResult, error) {
		ctx, cancel := context.WithTimeout(e.Ctx, runProcessTimeout)
		defer cancel()

		p := fork.NewProcess(ctx, command, fork.WithArgs(args...))
		e.Logf("Запускаю %s", p.String())
		exitCode, err := p.Run(ctx)
		if err != nil {
			return RunResult{}, err
		}

		res := RunResult{
			ExitCode: exitCode,
			Stdout:   string(p.Stdout()),
			Stderr:   string(p.Stderr()),
		}
		if res.Stderr != "" {
			e.Logf("stderr процесса:\n%s", res.Stderr)
		}
		return res, nil
	})
}
