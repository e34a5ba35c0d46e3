package errors

import (
	stderrors "errors"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var sink int

// currentLine returns the line number of its call site.
func currentLine() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}

// divide recovers the failure raised by n / d and reports the division's line.
func divide(n, d int) (f *Failure, line int) {
	defer func() {
		f = Recover(recover())
	}()
	line = currentLine() + 1
	sink = n / d
	return nil, line
}

// explode panics with an explicit value.
func explode(v interface{}) (f *Failure, line int) {
	defer func() {
		f = Recover(recover())
	}()
	line = currentLine() + 1
	panic(v)
}

func deepPanic() {
	panic("deep")
}

func callsDeepPanic() (f *Failure) {
	defer func() {
		f = Recover(recover())
	}()
	deepPanic()
	return nil
}

func TestRecover_DivideByZero(t *testing.T) {
	f, line := divide(1, 0)

	require.NotNil(t, f)
	require.True(t, f.Active())
	require.Equal(t, line, f.Line())
	require.Equal(t, "failure_test.go", filepath.Base(f.File()))

	cause, ok := f.Cause().(runtime.Error)
	require.True(t, ok)
	require.Contains(t, cause.Error(), "divide by zero")
}

func TestRecover_NoPanic(t *testing.T) {
	f, _ := divide(4, 2)
	require.Nil(t, f)
}

func TestRecover_NilValue(t *testing.T) {
	require.Nil(t, Recover(nil))
}

func TestRecover_ExplicitPanic(t *testing.T) {
	f, line := explode("boom")

	require.True(t, f.Active())
	require.Equal(t, "boom", f.Cause())
	require.Equal(t, line, f.Line())
}

func TestRecover_InnermostFrame(t *testing.T) {
	f := callsDeepPanic()

	require.True(t, f.Active())
	require.True(t, strings.HasSuffix(f.origin.Function, ".deepPanic"), f.origin.Function)
}

func TestRecover_OutsidePanic(t *testing.T) {
	// A non-nil value that did not come from a panic has no origin.
	f := Recover("not a panic")

	require.NotNil(t, f)
	require.False(t, f.Active())
	require.Empty(t, f.File())
	require.Zero(t, f.Line())
}

func TestHere(t *testing.T) {
	err := stderrors.New("failed")
	line := currentLine() + 1
	f := Here(err)

	require.True(t, f.Active())
	require.Equal(t, line, f.Line())
	require.Equal(t, err, f.Cause())
	require.Equal(t, "failure_test.go", filepath.Base(f.File()))
}

func TestHere_NilError(t *testing.T) {
	require.Nil(t, Here(nil))
}

func TestCaller_Skip(t *testing.T) {
	mark := func(err error) *Failure {
		return Caller(err, 1)
	}

	err := stderrors.New("failed")
	line := currentLine() + 1
	f := mark(err)

	require.True(t, f.Active())
	require.Equal(t, line, f.Line())
}

func TestFailure_NilAccessors(t *testing.T) {
	var f *Failure

	require.False(t, f.Active())
	require.Nil(t, f.Cause())
	require.Empty(t, f.File())
	require.Zero(t, f.Line())
}

func TestRecover_Concurrent(t *testing.T) {
	const workers = 50

	var wg sync.WaitGroup
	results := make([]*Failure, workers)
	lines := make([]int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], lines[i] = divide(i, 0)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.True(t, results[i].Active())
		require.Equal(t, lines[i], results[i].Line())
	}
}
