// Package interceptor applies the observing log-on-failure semantics to
// gRPC unary call boundaries.
//
// The interceptors log one record per failed RPC, labeled with the full
// method name and rendered with the status code and message, then return
// the error unchanged: RPC semantics forbid absorbing it. The sink is
// resolved from the call context unless WithSink pins one, and the
// severity is derived from the status code (client-caused and lifecycle
// codes warn, server faults error) unless WithLevels overrides the
// mapping.
package interceptor
