package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the namespace token for all configuration environment variables.
const EnvPrefix = "STAKEWATCH"

// envConfigFilename selects the config file when --config-path is not given.
// It is consumed before resolution and is not part of the Config record.
const envConfigFilename = "STAKEWATCH_CONFIG_FILENAME"

// Defaults for fields that declare one. Fields not listed default to their
// zero value, and the websocket endpoint has no default at all.
const (
	DefaultConfigPath              = ".env"
	DefaultInterval                = 21600
	DefaultErrorInterval           = 30
	DefaultHookActiveNextEraPath   = "./hooks/active_next_era.sh"
	DefaultHookInactiveNextEraPath = "./hooks/inactive_next_era.sh"
)

// Chain names accepted as the positional command-line argument.
const (
	ChainWestend  = "westend"
	ChainKusama   = "kusama"
	ChainPolkadot = "polkadot"
)

// chainEndpoints maps a chain name to its well-known public RPC endpoint.
var chainEndpoints = map[string]string{
	ChainWestend:  "wss://westend-rpc.polkadot.io",
	ChainKusama:   "wss://kusama-rpc.polkadot.io",
	ChainPolkadot: "wss://rpc.polkadot.io",
}

// ChainNames returns the closed set of valid chain names.
func ChainNames() []string {
	return []string{ChainWestend, ChainKusama, ChainPolkadot}
}

// Config is the resolved runtime configuration for the stakewatch agent.
// It is constructed once per process and never mutated afterwards.
type Config struct {
	Interval       uint64   `mapstructure:"interval"`
	ErrorInterval  uint64   `mapstructure:"error_interval"`
	SubstrateWSURL string   `mapstructure:"substrate_ws_url" validate:"required,url"`
	Stashes        []string `mapstructure:"stashes"`
	IsDebug        bool     `mapstructure:"is_debug"`
	IsShort        bool     `mapstructure:"is_short"`

	HookNewSessionPath      string `mapstructure:"hook_new_session_path"`
	HookActiveNextEraPath   string `mapstructure:"hook_active_next_era_path"`
	HookInactiveNextEraPath string `mapstructure:"hook_inactive_next_era_path"`

	MatrixUser                   string `mapstructure:"matrix_user"`
	MatrixBotUser                string `mapstructure:"matrix_bot_user"`
	MatrixBotPassword            string `mapstructure:"matrix_bot_password"`
	MatrixDisabled               bool   `mapstructure:"matrix_disabled"`
	MatrixPublicRoomDisabled     bool   `mapstructure:"matrix_public_room_disabled"`
	MatrixBotDisplayNameDisabled bool   `mapstructure:"matrix_bot_display_name_disabled"`
}

// flagToKey maps CLI flag names to configuration keys where the
// dash-to-underscore rule does not produce the right key.
var flagToKey = map[string]string{
	"debug":                           "is_debug",
	"short":                           "is_short",
	"disable-matrix":                  "matrix_disabled",
	"disable-public-matrix-room":      "matrix_public_room_disabled",
	"disable-matrix-bot-display-name": "matrix_bot_display_name_disabled",
}

// bindFlags binds explicitly set CLI flags to configuration keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		// config-path is consumed by the file loader, not part of the record
		if f.Name == "config-path" {
			return
		}

		key, ok := flagToKey[f.Name]
		if !ok {
			key = strings.ReplaceAll(f.Name, "-", "_")
		}

		// Only bind if the flag was explicitly set, so flag defaults
		// never shadow file or environment values
		if f.Changed {
			_ = v.BindPFlag(key, f)
		}
	})
}

// setDefaults registers every configuration key with its compiled-in default.
// Keys without a declared default get their zero value so that environment
// lookups still resolve for them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("error_interval", DefaultErrorInterval)
	v.SetDefault("substrate_ws_url", "")
	v.SetDefault("stashes", []string{})
	v.SetDefault("is_debug", false)
	v.SetDefault("is_short", false)

	v.SetDefault("hook_new_session_path", "")
	v.SetDefault("hook_active_next_era_path", DefaultHookActiveNextEraPath)
	v.SetDefault("hook_inactive_next_era_path", DefaultHookInactiveNextEraPath)

	v.SetDefault("matrix_user", "")
	v.SetDefault("matrix_bot_user", "")
	v.SetDefault("matrix_bot_password", "")
	v.SetDefault("matrix_disabled", false)
	v.SetDefault("matrix_public_room_disabled", false)
	v.SetDefault("matrix_bot_display_name_disabled", false)
}

// configPath resolves the config file location: the --config-path flag if
// explicitly set, else the STAKEWATCH_CONFIG_FILENAME environment variable,
// else the fixed default filename.
func configPath(flags *pflag.FlagSet) string {
	if flags != nil && flags.Changed("config-path") {
		if p, err := flags.GetString("config-path"); err == nil && p != "" {
			return p
		}
	}
	if p := os.Getenv(envConfigFilename); p != "" {
		return p
	}
	return DefaultConfigPath
}

// mergeConfigFile reads a KEY=VALUE file and merges its prefixed entries into
// the config layer. The file is optional: a missing or malformed file is
// skipped and resolution falls through to environment and defaults.
func mergeConfigFile(v *viper.Viper, path string) {
	vars, err := godotenv.Read(path)
	if err != nil {
		slog.Debug("skipping config file", "path", path, "err", err)
		return
	}

	prefix := EnvPrefix + "_"
	settings := make(map[string]any, len(vars))
	for name, value := range vars {
		key, ok := strings.CutPrefix(name, prefix)
		if !ok {
			continue
		}
		settings[strings.ToLower(key)] = value
	}

	if err := v.MergeConfigMap(settings); err != nil {
		slog.Debug("skipping config file", "path", path, "err", err)
		return
	}
	slog.Info("loaded configuration file", "path", path)
}

// normalizeStashes trims whitespace and drops blank entries produced by
// splitting a delimited stash list (for example a trailing comma). Order is
// preserved.
func normalizeStashes(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Load runs the resolution pipeline and returns a validated Config.
// Order of precedence (highest to lowest):
// flags > chain shortcut > environment > config file > defaults
//
// Parameters:
//   - chain: positional chain name ("" when absent); a recognized name
//     resolves the websocket endpoint to its well-known URL unless an
//     explicit --substrate-ws-url flag is set
//   - flags: parsed flag set (can be nil)
//
// The process environment is read, never written.
func Load(chain string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Defaults
	setDefaults(v)

	// 2. Optional KEY=VALUE config file
	mergeConfigFile(v, configPath(flags))

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Chain shortcut, unless an explicit endpoint flag wins
	if chain != "" {
		url, ok := chainEndpoints[chain]
		if !ok {
			return nil, fmt.Errorf("unknown chain %q, valid chains: %s", chain, strings.Join(ChainNames(), ", "))
		}
		if flags == nil || !flags.Changed("substrate-ws-url") {
			v.Set("substrate_ws_url", url)
		}
	}

	// 5. Explicitly set flags
	if flags != nil {
		bindFlags(v, flags)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Stashes = normalizeStashes(cfg.Stashes)

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Resolve parses args as a full stakewatch command line (positional chain
// name plus flags) and runs the resolution pipeline on the result.
func Resolve(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("stakewatch", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}
	return Load(fs.Arg(0), fs)
}
