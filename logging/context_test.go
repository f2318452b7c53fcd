package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureSink records every message it receives, for assertions.
type captureSink struct {
	// records holds the emitted messages in order.
	records []string
}

// Log appends the message to the captured records.
func (s *captureSink) Log(_ Level, message string) {
	s.records = append(s.records, message)
}

// TestToContext_FromContext carries a sink through a context and resolves it back.
func TestToContext_FromContext(t *testing.T) {
	t.Parallel()

	sink := new(captureSink)
	ctx := ToContext(context.Background(), sink)

	FromContext(ctx).Log(Warn, "carried")
	require.Equal(t, []string{"carried"}, sink.records)
}

// TestFromContext_FallsBackToDefault resolves the process-wide sink from a bare context.
func TestFromContext_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	require.NotNil(t, FromContext(context.Background()))
	require.NotNil(t, Default())
}

// TestSetDefault replaces the process-wide sink and guards against nil.
func TestSetDefault(t *testing.T) { //nolint:paralleltest // Mutates the process-wide default sink.
	previous := Default()
	defer SetDefault(previous)

	sink := new(captureSink)
	SetDefault(sink)
	FromContext(context.Background()).Log(Error, "ambient")
	require.Equal(t, []string{"ambient"}, sink.records)

	// A nil default degrades to the no-op sink, never to a nil interface.
	SetDefault(nil)
	require.NotNil(t, Default())
}
