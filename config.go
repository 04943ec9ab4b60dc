package pagecrawl

import "time"

// Default configuration values.
const (
	DefaultTimeout = 10 * time.Second
	DefaultDelay   = 1 * time.Second
	DefaultOutput  = "dist/output.json"
)

// Config holds crawler and output settings. It is passed explicitly to the
// components that need it rather than kept as process-wide state.
type Config struct {
	// Timeout bounds each HTTP request.
	Timeout time.Duration `yaml:"timeout"`

	// Delay is slept before every request. Zero disables it.
	Delay time.Duration `yaml:"delay"`

	// UserAgent overrides the fetcher's default User-Agent header.
	UserAgent string `yaml:"user_agent"`

	// Headers are added to every request.
	Headers map[string]string `yaml:"headers"`

	// Output is the file the CLI writes records to.
	Output string `yaml:"output"`

	// Database is the capture archive path. Empty disables archiving.
	Database string `yaml:"database"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Timeout: DefaultTimeout,
		Delay:   DefaultDelay,
		Output:  DefaultOutput,
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive, got %s", c.Timeout)
	}
	if c.Delay < 0 {
		return Errorf(EINVALID, "delay must not be negative, got %s", c.Delay)
	}
	if c.Output == "" {
		return Errorf(EINVALID, "output path required")
	}
	return nil
}
