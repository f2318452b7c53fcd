// Package logging defines the leveled logging capability consumed by the
// conversion operations:
//   - the Level enumeration and its parser,
//   - the Sink interface with zap, slog and no-op implementations,
//   - a process-wide default sink and context helpers
//     (ToContext/FromContext) for explicit injection,
//   - a declarative YAML Config that builds a zap-backed sink.
//
// The conversion operations never construct or configure sinks; they only
// resolve one from the context (falling back to the default) and emit
// through it. Hosts own the sink lifecycle.
package logging
