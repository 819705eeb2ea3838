package executor

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// Instantiates the new Executor through fx provider
func fxExecutor(t *testing.T) (Executor, *observer.ObservedLogs) {
	var e Executor
	core, recorded := observer.New(zap.InfoLevel)
	logger := zap.New(core).Sugar()

	fxtest.New(t,
		fx.Supply(logger),
		Module,
		fx.Populate(&e),
	).RequireStart().RequireStop()

	return e, recorded
}

func TestStart(t *testing.T) {
	e, recorded := fxExecutor(t)

	t.Run("StartTrue", func(t *testing.T) {
		binPath, err := exec.LookPath("true")
		if errors.Is(err, exec.ErrNotFound) {
			t.Skip("no true available")
		}
		require.NoError(t, err)

		cmd := exec.Command("true", "1", "2")
		cmd.Dir = "/"
		pid, err := e.Start(cmd)
		assert.NoError(t, err)
		assert.Positive(t, pid)
		logs := recorded.TakeAll()
		require.Len(t, logs, 1)
		assert.Equal(t, map[string]interface{}{
			"Path": binPath,
			"Dir":  "/",
			"Args": []interface{}{"1", "2"},
		}, logs[0].ContextMap())
	})

	t.Run("StartMissingBinary", func(t *testing.T) {
		cmd := exec.Command("/nonexistent/focus-bridge-test-binary", "--reuse-window")
		pid, err := e.Start(cmd)
		assert.Error(t, err)
		assert.Zero(t, pid)
		logs := recorded.TakeAll()
		require.Len(t, logs, 1)
		assert.Equal(t, "Exec", logs[0].Message)
	})
}

func TestStartFunc(t *testing.T) {
	core, recorded := observer.New(zap.InfoLevel)

	t.Run("custom start func", func(t *testing.T) {
		var started *exec.Cmd
		e := NewExecutor(
			WithLogger(zap.New(core).Sugar()),
			WithStartFunc(func(cmd *exec.Cmd) (int, error) {
				started = cmd
				return 4242, nil
			}),
		)

		cmd := exec.Command("cursor", "--reuse-window", `C:\myproj`)
		pid, err := e.Start(cmd)
		require.NoError(t, err)
		assert.Equal(t, 4242, pid)
		assert.Same(t, cmd, started)
		assert.Len(t, recorded.TakeAll(), 1)
	})

	t.Run("nil start func", func(t *testing.T) {
		e := NewExecutor(WithLogger(zap.New(core).Sugar()), WithStartFunc(nil))
		pid, err := e.Start(exec.Command("cursor"))
		assert.ErrorIs(t, err, MissingStartFuncError)
		assert.Zero(t, pid)

		logs := recorded.TakeAll()
		require.Len(t, logs, 2)
		assert.Equal(t, "missing StartFunc - skipped execution", logs[1].Message)
	})
}

func TestStartDetachedReleaseFailure(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("no true available")
	}

	core, recorded := observer.New(zap.InfoLevel)
	e := &executorImp{
		Logger: zap.New(core).Sugar(),
		releaseFunc: func(*os.Process) error {
			return errors.New("invalid handle")
		},
	}
	e.StartFunc = e.startDetached

	cmd := exec.Command("true")
	pid, err := e.Start(cmd)
	require.NoError(t, err)
	assert.Positive(t, pid)
	_ = cmd.Wait()

	warnings := recorded.FilterMessage("releasing started process").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, int64(pid), warnings[0].ContextMap()["pid"])
	assert.Equal(t, "invalid handle", warnings[0].ContextMap()["error"])
}
