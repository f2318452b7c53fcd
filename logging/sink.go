package logging

// Sink is the consumed logging collaborator: a facility that accepts
// leveled text messages and records or forwards them. Thread-safety and
// ordering among records are owned by the implementation; the conversion
// operations assume Log is safe to call concurrently and treat it as
// fire-and-forget.
type Sink interface {
	Log(level Level, message string)
}

// NopSink discards every record. It is useful as an explicit "no logging"
// capability in tests and benchmarks.
type NopSink struct{}

// Log discards the record.
func (NopSink) Log(Level, string) {}

var _ Sink = NopSink{}
