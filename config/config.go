package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug              = "debug"
	ConfigColor              = "color"
	ConfigLongestCaptureOnly = "longest-capture-only"
	ConfigPerftThreads       = "perft-threads"
	ConfigHistoryFile        = "history-file"
	ConfigCPUProfile         = "cpu-profile"
)

// Config wraps a viper instance. Values come from flags first, then
// DRAUGHTS_* environment variables, then the defaults below.
type Config struct {
	*viper.Viper

	args []string
}

func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigColor, true)
	c.SetDefault(ConfigLongestCaptureOnly, false)
	c.SetDefault(ConfigPerftThreads, 4)
	c.SetDefault(ConfigHistoryFile, "/tmp/draughts_readline.tmp")
	c.SetDefault(ConfigCPUProfile, "")
}

func (c *Config) Load(args []string) error {
	if c.Viper == nil {
		c.Viper = viper.New()
	}
	c.setDefaults()

	fs := pflag.NewFlagSet("draughts", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "turn on debug logging")
	fs.Bool(ConfigColor, true, "use ANSI colors when displaying the board")
	fs.Bool(ConfigLongestCaptureOnly, false, "only allow capture chains of maximum length")
	fs.Int(ConfigPerftThreads, 4, "number of goroutines used by perft")
	fs.String(ConfigHistoryFile, "/tmp/draughts_readline.tmp", "readline history file")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("draughts")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return nil
}

// Args returns the command-line arguments left over after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// Set validates a handful of keys before storing them; it is used by the
// shell's `set` command.
func (c *Config) Set(key string, value string) error {
	switch key {
	case ConfigDebug, ConfigColor, ConfigLongestCaptureOnly:
		switch strings.ToLower(value) {
		case "true", "on", "1":
			c.Viper.Set(key, true)
		case "false", "off", "0":
			c.Viper.Set(key, false)
		default:
			return fmt.Errorf("%s expects a boolean, got %q", key, value)
		}
	case ConfigPerftThreads:
		var n int
		if _, err := fmt.Sscanf(value, "%d", &n); err != nil || n < 1 {
			return fmt.Errorf("%s expects a positive integer, got %q", key, value)
		}
		c.Viper.Set(key, n)
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}
	return nil
}

// SanitizedSettings returns the settings in a form suitable for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
