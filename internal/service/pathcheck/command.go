package pathcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	logerror "github.com/metaworm/log-error"
	"github.com/metaworm/log-error/logging"
	"github.com/metaworm/log-error/optional"
	"github.com/metaworm/log-error/result"
)

// Options controls the pathcheck run and configuration.
type Options struct {
	// ConfigPath specifies the path to the logging settings YAML file.
	ConfigPath string
	// Level is the minimum severity when no settings file is used.
	Level string
	// Detail switches failure records to the verbose error rendering.
	Detail bool
	// Paths are the filesystem paths to inspect.
	Paths []string
	// Out receives the per-path report. Defaults to os.Stdout.
	Out io.Writer
}

// errNoPaths indicates the run was invoked without anything to inspect.
var errNoPaths = errors.New("at least one path must be provided")

// Run inspects every path and reports sizes to Out. Per-path failures are
// absorbed into log records; only usage problems are returned as errors.
func Run(ctx context.Context, opts *Options) error {
	if len(opts.Paths) == 0 {
		return errNoPaths
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	sink, err := buildSink(opts)
	if err != nil {
		return err
	}

	ctx = logging.ToContext(ctx, sink)

	for _, path := range opts.Paths {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		inspect(ctx, out, path, opts.Detail)
	}

	return nil
}

// buildSink constructs the logging sink: the settings file wins when it
// exists, the --level flag covers the rest.
func buildSink(opts *Options) (logging.Sink, error) { //nolint:ireturn,nolintlint // The sink facade is an interface.
	if opts.ConfigPath != "" {
		if _, err := os.Stat(opts.ConfigPath); err == nil {
			cfg, err := logging.Load(opts.ConfigPath)
			if err != nil {
				return nil, fmt.Errorf("load logging settings: %w", err)
			}

			return cfg.Build()
		}
	}

	//nolint:exhaustruct // Validate fills the remaining fields with defaults.
	cfg := &logging.Config{Level: opts.Level}

	sink, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logging sink: %w", err)
	}

	return sink, nil
}

// inspect converts one stat outcome: a missing path is an expected,
// absorbed warning, any other failure records an error, and successes are
// reported to out. The success path flows through the same conversion and
// emits nothing.
func inspect(ctx context.Context, out io.Writer, path string, detailed bool) {
	r := result.Of(os.Stat(path))

	var o optional.Option[fs.FileInfo]

	switch {
	case errors.Is(r.Err(), fs.ErrNotExist) && detailed:
		o = logerror.WarnDetail(ctx, r, "optional file")
	case errors.Is(r.Err(), fs.ErrNotExist):
		o = logerror.Warn(ctx, r, "optional file")
	case detailed:
		o = logerror.ErrorDetail(ctx, r, "stat "+path)
	default:
		o = logerror.Error(ctx, r, "stat "+path)
	}

	info, ok := o.Get()
	if !ok {
		return
	}

	if info.IsDir() {
		_, _ = fmt.Fprintf(out, "%s\tdirectory\n", path)
		return
	}

	_, _ = fmt.Fprintf(out, "%s\t%d bytes\n", path, info.Size())
}
