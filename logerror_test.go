package logerror_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	logerror "github.com/metaworm/log-error"
	"github.com/metaworm/log-error/logging"
	"github.com/metaworm/log-error/optional"
	"github.com/metaworm/log-error/result"
)

// observedContext returns a context carrying a zap observer sink together
// with the recorded logs for assertions.
func observedContext(t *testing.T) (context.Context, *observer.ObservedLogs) {
	t.Helper()

	core, recorded := observer.New(zapcore.DebugLevel)
	ctx := logging.ToContext(context.Background(), logging.ZapSink(zap.New(core).Sugar()))

	return ctx, recorded
}

// verboseError renders a short message via Error and an expanded form via %+v.
type verboseError struct {
	// msg is the short display rendering.
	msg string
	// trace is the extra diagnostic text exposed only by the verbose form.
	trace string
}

// Error returns the short rendering.
func (e *verboseError) Error() string { return e.msg }

// Format expands the error under %+v and falls back to the short rendering otherwise.
func (e *verboseError) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "%s\n%s", e.msg, e.trace)
		return
	}

	fmt.Fprint(f, e.msg)
}

// TestAt_SuccessPassthrough returns Present(v) and emits nothing, regardless of severity and label.
func TestAt_SuccessPassthrough(t *testing.T) {
	t.Parallel()

	ctx, recorded := observedContext(t)

	for _, level := range []logging.Level{logging.Debug, logging.Info, logging.Warn, logging.Error} {
		o := logerror.At(ctx, result.Ok(42), level, "x")
		require.Equal(t, 42, o.MustGet())
	}

	require.Equal(t, 42, logerror.Warn(ctx, result.Ok(42), "x").MustGet())
	require.Equal(t, 42, logerror.Error(ctx, result.Ok(42), "x").MustGet())
	require.Equal(t, 42, logerror.WarnDetail(ctx, result.Ok(42), "x").MustGet())
	require.Equal(t, 42, logerror.ErrorDetail(ctx, result.Ok(42), "x").MustGet())

	require.Zero(t, recorded.Len())
}

// TestAt_FailureAbsorbed returns Absent and emits exactly one record at the
// requested severity whose text contains the label.
func TestAt_FailureAbsorbed(t *testing.T) {
	t.Parallel()

	levels := map[logging.Level]zapcore.Level{
		logging.Debug: zapcore.DebugLevel,
		logging.Info:  zapcore.InfoLevel,
		logging.Warn:  zapcore.WarnLevel,
		logging.Error: zapcore.ErrorLevel,
	}

	for level, zapLevel := range levels {
		ctx, recorded := observedContext(t)

		o := logerror.At(ctx, result.Err[int](errors.New("disk gone")), level, "load index")
		require.True(t, o.IsAbsent())

		entries := recorded.All()
		require.Len(t, entries, 1)
		require.Equal(t, zapLevel, entries[0].Level)
		require.Contains(t, entries[0].Message, "load index")
		require.Contains(t, entries[0].Message, "disk gone")
	}
}

// TestFixedSeverityVariants pin Warn and Error to their levels.
func TestFixedSeverityVariants(t *testing.T) {
	t.Parallel()

	ctx, recorded := observedContext(t)
	failure := result.Err[string](errors.New("nope"))

	require.True(t, logerror.Warn(ctx, failure, "first").IsAbsent())
	require.True(t, logerror.Error(ctx, failure, "second").IsAbsent())

	entries := recorded.All()
	require.Len(t, entries, 2)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

// TestDetail_VerboseRendering emits a longer message than the display
// variant for the same error when the two renderings differ.
func TestDetail_VerboseRendering(t *testing.T) {
	t.Parallel()

	ctx, recorded := observedContext(t)
	issue := &verboseError{msg: "parse failed", trace: "at line 7"}

	require.True(t, logerror.Warn(ctx, result.Err[int](issue), "config").IsAbsent())
	require.True(t, logerror.WarnDetail(ctx, result.Err[int](issue), "config").IsAbsent())

	entries := recorded.All()
	require.Len(t, entries, 2)

	short, long := entries[0].Message, entries[1].Message
	require.Equal(t, "config: parse failed", short)
	require.Contains(t, long, short)
	require.Contains(t, long, "at line 7")
	require.Greater(t, len(long), len(short))
}

// TestFuncVariants use the callback's rendering verbatim and never call it on success.
func TestFuncVariants(t *testing.T) {
	t.Parallel()

	ctx, recorded := observedContext(t)

	o := logerror.AtFunc(ctx, result.Ok(1), logging.Error, func(error) string {
		t.Fatal("fn must not run on the success branch")
		return ""
	})
	require.Equal(t, 1, o.MustGet())
	require.Zero(t, recorded.Len())

	issue := errors.New("timeout")
	require.True(t, logerror.WarnFunc(ctx, result.Err[int](issue), func(err error) string {
		return "custom: " + err.Error()
	}).IsAbsent())

	entries := recorded.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, "custom: timeout", entries[0].Message)

	require.True(t, logerror.ErrorFunc(ctx, result.Err[int](issue), func(err error) string {
		return err.Error()
	}).IsAbsent())
	require.Equal(t, zapcore.ErrorLevel, recorded.All()[1].Level)
}

// TestConversionIsIdempotent_LoggingIsNot checks that equal inputs convert
// equally while each call emits its own record.
func TestConversionIsIdempotent_LoggingIsNot(t *testing.T) {
	t.Parallel()

	ctx, recorded := observedContext(t)

	first := logerror.Warn(ctx, result.Err[int](errors.New("gone")), "lookup")
	second := logerror.Warn(ctx, result.Err[int](errors.New("gone")), "lookup")
	require.Equal(t, first, second)
	require.Equal(t, 2, recorded.Len())

	okFirst := logerror.Warn(ctx, result.Ok(7), "lookup")
	okSecond := logerror.Warn(ctx, result.Ok(7), "lookup")
	require.Equal(t, okFirst, okSecond)
	require.Equal(t, 7, okSecond.MustGet())
	require.Equal(t, 2, recorded.Len())
}

// TestEmptyDisplayError still produces a record carrying the label.
func TestEmptyDisplayError(t *testing.T) {
	t.Parallel()

	ctx, recorded := observedContext(t)

	require.True(t, logerror.Error(ctx, result.Err[int](errors.New("")), "probe").IsAbsent())

	entries := recorded.All()
	require.Len(t, entries, 1)
	require.Equal(t, "probe: ", entries[0].Message)
}

// TestOptionInput logs the fixed "no value" rendering on absence and passes
// present values through silently.
func TestOptionInput(t *testing.T) {
	t.Parallel()

	ctx, recorded := observedContext(t)

	o := logerror.WarnOption(ctx, optional.Present("value"), "cache entry")
	require.Equal(t, "value", o.MustGet())
	require.Zero(t, recorded.Len())

	require.True(t, logerror.WarnOption(ctx, optional.Absent[string](), "cache entry").IsAbsent())
	require.True(t, logerror.ErrorOption(ctx, optional.Absent[string](), "cache entry").IsAbsent())
	require.True(t, logerror.AtOption(ctx, optional.Absent[string](), logging.Info, "cache entry").IsAbsent())

	entries := recorded.All()
	require.Len(t, entries, 3)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	require.Equal(t, zapcore.InfoLevel, entries[2].Level)

	for _, entry := range entries {
		require.Equal(t, "cache entry: "+logerror.ErrAbsent.Error(), entry.Message)
	}
}

// TestObserve returns the result unchanged and logs only on failure.
func TestObserve(t *testing.T) {
	t.Parallel()

	ctx, recorded := observedContext(t)

	ok := result.Ok(42)
	require.Equal(t, ok, logerror.Observe(ctx, ok, logging.Warn, "step"))
	require.Zero(t, recorded.Len())

	issue := errors.New("midway")
	failed := result.Err[int](issue)

	got := logerror.Observe(ctx, failed, logging.Error, "step")
	require.Equal(t, failed, got)
	require.ErrorIs(t, got.Err(), issue)

	entries := recorded.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	require.Contains(t, entries[0].Message, "step")
}

// TestEndToEnd_OptionalFile runs the canonical missing-file scenario against a real stat call.
func TestEndToEnd_OptionalFile(t *testing.T) {
	t.Parallel()

	ctx, recorded := observedContext(t)

	info, err := os.Stat(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)

	o := logerror.Warn(ctx, result.Of(info, err), "optional file")
	require.True(t, o.IsAbsent())

	entries := recorded.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Contains(t, entries[0].Message, "optional file")

	require.Equal(t, 42, logerror.At(ctx, result.Ok(42), logging.Warn, "x").MustGet())
	require.Equal(t, 1, recorded.Len())
}

// TestDefaultSinkFallback emits through the process-wide default when the
// context carries no sink; nothing panics and the value converts as usual.
func TestDefaultSinkFallback(t *testing.T) {
	t.Parallel()

	require.True(t, logerror.Warn(context.Background(), result.Err[int](errors.New("ambient")), "fallback").IsAbsent())
	require.Equal(t, 7, logerror.Warn(context.Background(), result.Ok(7), "fallback").MustGet())
}
