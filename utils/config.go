package utils

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so the YAML config can spell values
// like "150ms"
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return errors.Wrap(err, "[UnmarshalYAML] duration must be a string")
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return errors.Wrapf(err, "[UnmarshalYAML] invalid duration: %+v", raw)
	}

	*d = Duration(parsed)
	return nil
}

// Std returns the duration as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds the configuration for a run: the mandatory command-line
// tokens plus the tuning knobs from the optional config file
type Config struct {
	FilePath      string   `yaml:"-"`
	Torus         bool     `yaml:"-"`
	UseParallel   bool     `yaml:"use_parallel"`
	UseMemoryPool bool     `yaml:"use_memory_pool"`
	AutoPlay      bool     `yaml:"auto_play"`
	FrameRate     Duration `yaml:"frame_rate"`
	ShowStats     bool     `yaml:"show_stats"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		UseParallel:   true,
		UseMemoryPool: true,
		AutoPlay:      false,
		FrameRate:     Duration(150 * time.Millisecond),
		ShowStats:     true,
	}
}

// LoadConfig loads configuration from a YAML file, falling back to the
// defaults when no file exists at the given path
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

/*
ParseArgs applies the command-line tokens `file:<path>` and
`torus:<true|false>` to the config.

When none of the tokens is recognized the result is an ErrUsage, so the
caller shows the help text. A recognized token with a bad value (empty
path, unparsable bool) is an ErrArgument instead.
*/
func (c *Config) ParseArgs(args []string) error {
	recognized := false

	for _, arg := range args {
		key, value, found := strings.Cut(arg, ":")
		if !found {
			continue
		}

		switch key {
		case "file":
			recognized = true
			if value == "" {
				return errors.Wrap(ErrArgument, "[ParseArgs] file path is empty")
			}
			c.FilePath = value
		case "torus":
			recognized = true
			torus, err := strconv.ParseBool(value)
			if err != nil {
				return errors.Wrapf(ErrArgument, "[ParseArgs] torus must be true or false, got: %+v", value)
			}
			c.Torus = torus
		}
	}

	if !recognized {
		return errors.Wrap(ErrUsage, "[ParseArgs] no recognized arguments")
	}
	if c.FilePath == "" {
		return errors.Wrap(ErrArgument, "[ParseArgs] file path is empty")
	}

	return nil
}
