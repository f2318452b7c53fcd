// Package logerror converts fallible computation results into optional
// values, routing the error into a leveled logging sink on the way.
//
// On a successful result the operations return the value untouched and emit
// nothing. On a failed result they emit exactly one record, composed from a
// caller-supplied label and a rendering of the error, and return an absent
// option: the error is terminally absorbed and never re-raised. Callers
// trade error detail for simplicity and rely on logs for diagnosis.
//
// Every operation resolves its sink via logging.FromContext, so the
// capability is injected explicitly through the caller's context rather
// than hidden in a global:
//
//	ctx := logging.ToContext(ctx, sink)
//	data := logerror.Warn(ctx, result.Of(os.ReadFile(path)), "optional file")
//
// Variants select the severity (At takes it as an argument; Warn and Error
// fix it), the error rendering (the plain variants use the error's message,
// the Detail variants use the verbose %+v form, the Func variants take a
// format callback), and the input shape (the Option variants accept an
// optional value whose absence is logged as "no value"). Observe logs a
// failure without consuming the result, for call sites that still need to
// propagate it.
package logerror
