package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/shhac/snooze/internal/domain"
	"github.com/shhac/snooze/internal/session"
)

// Configuration keys, shared by flags, environment (SNOOZE_*) and the
// config file.
const (
	KeyDebug          = "debug"
	KeyLogDir         = "log.dir"
	KeyRequestTimeout = "request.timeout"
	KeyInsecure       = "request.insecure"
	KeyFollowRedirect = "request.follow_redirects"
	KeyOverlap        = "request.overlap"
	KeyTickInterval   = "ui.tick_interval"
	KeyInitialURL     = "ui.url"
)

// EnvPrefix prefixes every environment variable the app reads.
const EnvPrefix = "SNOOZE"

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool

	// LogDir overrides the platform log directory
	LogDir string

	// Client configures the HTTP transport. A zero timeout means none.
	Client domain.ClientSettings

	// Overlap decides what Send does while a request is in flight
	Overlap session.OverlapPolicy

	// TickInterval is how often the UI polls for results while a request
	// is in flight
	TickInterval time.Duration

	// InitialURL pre-fills the URL field
	InitialURL string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Client:       domain.DefaultClientSettings(),
		Overlap:      session.OverlapIgnore,
		TickInterval: 16 * time.Millisecond,
	}
}

// SetDefaults registers DefaultConfig's values with v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(KeyDebug, d.Debug)
	v.SetDefault(KeyLogDir, d.LogDir)
	v.SetDefault(KeyRequestTimeout, d.Client.Timeout)
	v.SetDefault(KeyInsecure, d.Client.InsecureSkipVerify)
	v.SetDefault(KeyFollowRedirect, d.Client.FollowRedirects)
	v.SetDefault(KeyOverlap, string(d.Overlap))
	v.SetDefault(KeyTickInterval, d.TickInterval)
	v.SetDefault(KeyInitialURL, d.InitialURL)
}

// NewViper returns a viper instance with defaults set and environment
// variables bound: request.timeout is read from SNOOZE_REQUEST_TIMEOUT.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// ReadConfigFile loads a YAML config file into v. An empty path looks for
// snooze.yaml in the working directory and the user config directory, and
// a missing file there is not an error.
func ReadConfigFile(v *viper.Viper, path string, searchDirs ...string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("snooze")
	v.SetConfigType("yaml")
	for _, dir := range searchDirs {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// LoadConfig builds a Config from v, validating enumerations and ranges.
func LoadConfig(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	cfg.Debug = v.GetBool(KeyDebug)
	cfg.LogDir = v.GetString(KeyLogDir)
	cfg.Client.Timeout = v.GetDuration(KeyRequestTimeout)
	cfg.Client.InsecureSkipVerify = v.GetBool(KeyInsecure)
	cfg.Client.FollowRedirects = v.GetBool(KeyFollowRedirect)
	cfg.InitialURL = v.GetString(KeyInitialURL)

	if cfg.Client.Timeout < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %s", KeyRequestTimeout, cfg.Client.Timeout)
	}

	overlap, err := session.ParseOverlapPolicy(v.GetString(KeyOverlap))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.Overlap = overlap

	if tick := v.GetDuration(KeyTickInterval); tick > 0 {
		cfg.TickInterval = tick
	}

	return cfg, nil
}
