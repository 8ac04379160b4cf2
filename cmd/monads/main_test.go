package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/monads/pkg/monad"
	"github.com/ib-77/monads/pkg/monad/arith"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	app := newApp()
	app.Writer = stdout
	app.ErrWriter = stderr

	err := app.Run(append([]string{"monads"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestDemo_DefaultAction(t *testing.T) {
	t.Parallel()

	out, _, err := runApp(t)
	require.NoError(t, err)
	assert.Equal(t, "18\n32\n5.0\nabsent\n", out)
}

func TestDemo_Command(t *testing.T) {
	t.Parallel()

	out, _, err := runApp(t, "demo")
	require.NoError(t, err)
	assert.Equal(t, "18\n32\n5.0\nabsent\n", out)
}

func TestDemo_DebugLogging(t *testing.T) {
	t.Parallel()

	out, logs, err := runApp(t, "--loglvl", "debug", "demo")
	require.NoError(t, err)
	assert.Equal(t, "18\n32\n5.0\nabsent\n", out)
	assert.Equal(t, 1, strings.Count(logs, "chain became absent"))
}

func TestDemoLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"18", "32", "5.0", "absent"}, demoLines(context.Background()))
}

func TestEval(t *testing.T) {
	t.Parallel()

	out, _, err := runApp(t, "eval", "--step", "square", "--step", "sqrt", "--lines", "2", "--", "4", "-3", "1.5")
	require.NoError(t, err)
	assert.Equal(t, "4: 4.0\n-3: 3.0\n1.5: 1.5\n", out)
}

func TestEval_Absent(t *testing.T) {
	t.Parallel()

	out, _, err := runApp(t, "eval", "-s", "sqrt", "-s", "doubler", "-s", "doubler", "--", "-3", "16")
	require.NoError(t, err)
	assert.Equal(t, "-3: absent\n16: 16.0\n", out)
}

func TestEval_UnknownStep(t *testing.T) {
	t.Parallel()

	_, _, err := runApp(t, "eval", "--step", "cube", "2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, arith.ErrUnknownStep))
}

func TestEval_BadSeed(t *testing.T) {
	t.Parallel()

	_, _, err := runApp(t, "eval", "--step", "square", "two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"two"`)
}

func TestEval_NoSeeds(t *testing.T) {
	t.Parallel()

	_, _, err := runApp(t, "eval", "--step", "square")
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "18", render[int](monad.Of(18)))
	assert.Equal(t, "5.0", render[float64](monad.Just(5.0)))
	assert.Equal(t, "0.25", render[float64](monad.Just(0.25)))
	assert.Equal(t, "absent", render[float64](monad.Nothing[float64]()))
	assert.Equal(t, "hi", render[string](monad.Of("hi")))
}
