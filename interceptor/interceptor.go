package interceptor

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/metaworm/log-error/logging"
)

// UnaryServer returns a server interceptor that logs every failed handler
// invocation and passes the error through to the client unchanged.
//
//nolint:ireturn,nolintlint // Returning the grpc interceptor type is the point.
func UnaryServer(opts ...Option) grpc.UnaryServerInterceptor {
	s := newSettings(opts...)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			s.observe(ctx, info.FullMethod, err)
		}

		return resp, err
	}
}

// UnaryClient returns a client interceptor that logs every failed outgoing
// call and passes the error through to the caller unchanged.
//
//nolint:ireturn,nolintlint // Returning the grpc interceptor type is the point.
func UnaryClient(opts ...Option) grpc.UnaryClientInterceptor {
	s := newSettings(opts...)

	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		callOpts ...grpc.CallOption,
	) error {
		err := invoker(ctx, method, req, reply, cc, callOpts...)
		if err != nil {
			s.observe(ctx, method, err)
		}

		return err
	}
}

// observe emits one record for a failed RPC: the method is the label, the
// rendering carries the status code and message.
func (s *settings) observe(ctx context.Context, method string, err error) {
	st := status.Convert(err)

	sink := s.sink
	if sink == nil {
		sink = logging.FromContext(ctx)
	}

	sink.Log(s.levels(st.Code()), fmt.Sprintf("%s: %s: %s", method, st.Code(), st.Message()))
}

// defaultLevels maps status codes onto severities: server faults are
// errors, everything a client or the call lifecycle can cause is a warning.
func defaultLevels(code codes.Code) logging.Level {
	switch code {
	case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unimplemented:
		return logging.Error
	default:
		return logging.Warn
	}
}
