package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/jettonmap/internal/verify"
	"github.com/agentstation/jettonmap/pkg/constants"
	"github.com/agentstation/jettonmap/pkg/errors"
)

// Configuration keys. Each is also read from the upper-cased environment
// variable of the same name.
const (
	keyJettonsDir      = "jettons_dir"
	keyExtension       = "extension"
	keyOutputFile      = "output_file"
	keyTonCenterURL    = "toncenter_url"
	keyTonCenterAPIKey = "toncenter_api_key"
	keyIPFSGateway     = "ipfs_gateway"
	keyRequestTimeout  = "request_timeout"
	keyStrict          = "strict"
	keyAggregateMode   = "aggregate_mode"
	keyLogLevel        = "log_level"
	keyLogFormat       = "log_format"
	keyLogOutput       = "log_output"
	keyVerbose         = "verbose"
	keyQuiet           = "quiet"
	keyNoColor         = "no_color"
	keyFormat          = "format"
)

// Config holds the application configuration loaded from flags, the
// environment, .env files and the config file.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	ConfigFile string

	// Registry layout
	JettonsDir string
	Extension  string
	OutputFile string

	// Remote source
	TonCenterURL    string
	TonCenterAPIKey string
	IPFSGateway     string
	RequestTimeout  time.Duration

	// Validation
	Strict        bool
	AggregateMode string

	// Logging
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration in order of precedence:
//  1. Command-line flags (applied later through UpdateFromFlags)
//  2. Environment variables
//  3. .env files
//  4. Config file (path, or .jettonmap.yaml in the working or home directory)
//  5. Defaults
func LoadConfig(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".jettonmap")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("config", "failed to read config file", err)
		}
	}

	config := &Config{
		Verbose: v.GetBool(keyVerbose),
		Quiet:   v.GetBool(keyQuiet),
		NoColor: v.GetBool(keyNoColor) || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString(keyFormat),

		ConfigFile: v.ConfigFileUsed(),

		JettonsDir: v.GetString(keyJettonsDir),
		Extension:  v.GetString(keyExtension),
		OutputFile: v.GetString(keyOutputFile),

		TonCenterURL:    strings.TrimRight(v.GetString(keyTonCenterURL), "/"),
		TonCenterAPIKey: v.GetString(keyTonCenterAPIKey),
		IPFSGateway:     v.GetString(keyIPFSGateway),
		RequestTimeout:  v.GetDuration(keyRequestTimeout),

		Strict:        v.GetBool(keyStrict),
		AggregateMode: v.GetString(keyAggregateMode),

		LogLevel:  v.GetString(keyLogLevel),
		LogFormat: v.GetString(keyLogFormat),
		LogOutput: v.GetString(keyLogOutput),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyJettonsDir, constants.DefaultJettonsDir)
	v.SetDefault(keyExtension, constants.DefaultExtension)
	v.SetDefault(keyOutputFile, constants.DefaultOutputFile)
	v.SetDefault(keyTonCenterURL, constants.DefaultTonCenterURL)
	v.SetDefault(keyIPFSGateway, constants.DefaultIPFSGateway)
	v.SetDefault(keyRequestTimeout, constants.DefaultRequestTimeout)
	v.SetDefault(keyStrict, true)
	v.SetDefault(keyAggregateMode, string(verify.ModeMerge))
	v.SetDefault(keyLogFormat, "auto")
	v.SetDefault(keyLogOutput, "stdout")
}

// Validate checks values that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if _, err := verify.ParseMode(c.AggregateMode); err != nil {
		return err
	}
	if c.RequestTimeout <= 0 {
		return errors.NewConfigError(keyRequestTimeout, "must be positive", nil)
	}
	if c.TonCenterURL == "" {
		return errors.NewConfigError(keyTonCenterURL, "cannot be empty", nil)
	}
	if c.JettonsDir == "" || c.Extension == "" || c.OutputFile == "" {
		return errors.NewConfigError("registry", "jettons_dir, extension and output_file are required", nil)
	}
	return nil
}

// UpdateFromFlags applies parsed global flags. Flags override everything
// loaded from files and the environment.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads .env then .env.local. Variables already set in the
// environment are not overridden.
func loadEnvFiles() {
	for _, name := range []string{".env", ".env.local"} {
		_ = godotenv.Load(name)
	}
}
