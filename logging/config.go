package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config declares how a zap-backed sink is built. It is the only
// configuration surface of this module and belongs entirely to the sink;
// the conversion operations have none of their own.
type Config struct {
	// Level is the minimum severity emitted: debug, info, warn or error.
	Level string `yaml:"level"`
	// Encoding selects the record layout: console or json.
	Encoding string `yaml:"encoding"`
	// OutputPath is the record destination: stdout, stderr or a file path.
	OutputPath string `yaml:"output_path"`
}

const (
	// DefaultConfigFilename is the default filename for sink settings.
	DefaultConfigFilename = "logging.yaml"

	// DefaultLevel is the level applied when none is configured.
	DefaultLevel = "info"

	// EncodingConsole is the human-readable record layout.
	EncodingConsole = "console"

	// EncodingJSON is the machine-readable record layout.
	EncodingJSON = "json"

	// DefaultOutputPath is the destination applied when none is configured.
	DefaultOutputPath = "stderr"

	// DefaultFilePermissions is the file permission for saved settings.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownLevel is returned when the configured level does not parse.
	errUnknownLevel = errors.New("unknown log level")
	// errUnknownEncoding is returned when the configured encoding is not supported.
	errUnknownEncoding = errors.New("unknown encoding")
)

// Load reads sink settings from the provided path and validates them.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes sink settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and normalizes empty fields to
// their defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	// Set default level if not specified.
	if cfg.Level == "" {
		cfg.Level = DefaultLevel
	}

	if _, ok := ParseLevel(cfg.Level); !ok {
		return fmt.Errorf("%w: %q", errUnknownLevel, cfg.Level)
	}

	// Set default encoding if not specified.
	if cfg.Encoding == "" {
		cfg.Encoding = EncodingConsole
	}

	if cfg.Encoding != EncodingConsole && cfg.Encoding != EncodingJSON {
		return fmt.Errorf("%w: %q", errUnknownEncoding, cfg.Encoding)
	}

	// Set default destination if not specified.
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}

	return nil
}

// Build constructs a zap-backed sink from the settings.
//
//nolint:ireturn,nolintlint // The facade hands out the interface on purpose.
func (c *Config) Build(options ...zap.Option) (Sink, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}

	level, _ := ParseLevel(c.Level)

	var encoder zapcore.Encoder
	if c.Encoding == EncodingJSON {
		// Color escape codes have no place in machine-readable output.
		encCfg := encoderConfig()
		encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig())
	}

	// zap.Open understands stdout, stderr and plain file paths.
	output, _, err := zap.Open(c.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("open log output: %w", err)
	}

	core := zapcore.NewCore(encoder, output, level.zapLevel())

	return ZapSink(zap.New(core, options...).Sugar()), nil
}
