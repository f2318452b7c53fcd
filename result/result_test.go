package result

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestResult_Ok_ProducesResultWithValue verifies the success branch of Get.
func TestResult_Ok_ProducesResultWithValue(t *testing.T) {
	t.Parallel()

	r := Ok(42)

	value, err := r.Get()
	require.NoError(t, err)
	require.Equal(t, 42, value)
	require.True(t, r.IsOk())
	require.False(t, r.IsErr())
}

// TestResult_Err_ProducesResultWithError verifies the failure branch of Get.
func TestResult_Err_ProducesResultWithError(t *testing.T) {
	t.Parallel()

	issue := errors.New("test error")
	r := Err[int](issue)

	value, err := r.Get()
	require.ErrorIs(t, err, issue)
	require.Zero(t, value)
	require.False(t, r.IsOk())
	require.True(t, r.IsErr())
}

// TestResult_Of adapts (T, error) pairs in both directions.
func TestResult_Of(t *testing.T) {
	t.Parallel()

	n, err := strconv.Atoi("7")
	require.NoError(t, err)
	require.Equal(t, 7, Of(n, err).Value())

	_, badErr := strconv.Atoi("seven")
	require.Error(t, badErr)

	r := Of(0, badErr)
	require.True(t, r.IsErr())
	require.ErrorIs(t, r.Err(), badErr)
}

// TestResult_UnwrapOr returns the payload on success and the fallback on failure.
func TestResult_UnwrapOr(t *testing.T) {
	t.Parallel()

	require.Equal(t, "value", Ok("value").UnwrapOr("fallback"))
	require.Equal(t, "fallback", Err[string](errors.New("nope")).UnwrapOr("fallback"))
}

// TestResult_Must panics with the carried error on failure and returns the value otherwise.
func TestResult_Must(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, Ok(1).Must())

	issue := errors.New("boom")
	require.PanicsWithError(t, issue.Error(), func() {
		Err[int](issue).Must()
	})
}

// TestResult_Map transforms success values and passes failures through untouched.
func TestResult_Map(t *testing.T) {
	t.Parallel()

	doubled := Map(Ok(21), func(v int) int { return v * 2 })
	require.Equal(t, 42, doubled.Value())

	issue := errors.New("upstream")
	failed := Map(Err[int](issue), func(v int) int {
		t.Fatal("fn must not run on the failure branch")
		return v
	})
	require.ErrorIs(t, failed.Err(), issue)
}

// TestResult_FlatMap chains fallible transformations.
func TestResult_FlatMap(t *testing.T) {
	t.Parallel()

	parse := func(s string) Result[int] {
		return Of(strconv.Atoi(s))
	}

	ok := FlatMap(Ok("42"), parse)
	require.Equal(t, 42, ok.Value())

	failed := FlatMap(Ok("forty-two"), parse)
	require.True(t, failed.IsErr())

	issue := errors.New("upstream")
	passed := FlatMap(Err[string](issue), parse)
	require.ErrorIs(t, passed.Err(), issue)
}

// TestResult_ErrNil ensures Err with a nil error is success-equivalent.
func TestResult_ErrNil(t *testing.T) {
	t.Parallel()

	r := Err[int](nil)
	require.True(t, r.IsOk())
	require.Zero(t, r.Value())
}
