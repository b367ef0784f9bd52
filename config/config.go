package config

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type config struct {
	// Debug indicates if in debug mode.
	Debug bool

	// Label is used as prefix in log output, e.g., mainnet, testnet.
	Label string

	// Network is the network identifier used during gateway discovery.
	Network string

	// DiscoveryURL is the base URL of the network discovery service.
	// The network identifier is appended as-is.
	DiscoveryURL string `mapstructure:"discoveryUrl"`

	// Blockchain is the target chain identifier, hex.
	Blockchain string

	// IntervalSec is the default outcome polling interval in seconds.
	IntervalSec int `mapstructure:"intervalSec"`

	// HTTPTimeoutSec bounds every gateway request.
	HTTPTimeoutSec int `mapstructure:"httpTimeoutSec"`
}

var cfg = config{
	Network:        "testnet",
	DiscoveryURL:   DefaultNetworkURL,
	Blockchain:     DefaultChain,
	IntervalSec:    2,
	HTTPTimeoutSec: 30,
}

// Load reads .env (if present), the optional config file and environment
// overrides into the process-wide configuration.
func Load(display bool) {
	// Missing .env is fine, the environment may already be populated.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.AddConfigPath("./config")
	// Incase test cases require loading configs
	viper.AddConfigPath("../config")

	viper.SetEnvPrefix("circular")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("network", cfg.Network)
	viper.SetDefault("discoveryUrl", cfg.DiscoveryURL)
	viper.SetDefault("blockchain", cfg.Blockchain)
	viper.SetDefault("intervalSec", cfg.IntervalSec)
	viper.SetDefault("httpTimeoutSec", cfg.HTTPTimeoutSec)

	if err := load(display); err != nil {
		panic(err)
	}

	if err := validateConfig(); err != nil {
		panic(err)
	}
}

/* ------------------------------
        `Get` functions
------------------------------ */

// DebugMode tells if running in debug mode.
func DebugMode() bool {
	return cfg.Debug
}

// GetLabel returns custom label used as part of the log output prefix.
func GetLabel() string {
	return cfg.Label
}

// GetNetwork returns the configured network identifier.
func GetNetwork() string {
	return cfg.Network
}

// GetDiscoveryURL returns the network discovery base URL.
func GetDiscoveryURL() string {
	return cfg.DiscoveryURL
}

// GetBlockchain returns the configured chain identifier.
func GetBlockchain() string {
	return cfg.Blockchain
}

// GetInterval returns the default outcome polling interval.
func GetInterval() time.Duration {
	return time.Duration(cfg.IntervalSec) * time.Second
}

// GetHTTPTimeout returns the per-request gateway timeout.
func GetHTTPTimeout() time.Duration {
	return time.Duration(cfg.HTTPTimeoutSec) * time.Second
}

/* ------------------------------
         Utility Functions
------------------------------ */

func load(display bool) error {
	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional, defaults plus env cover the rest.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return err
	}

	if display {
		configContent, err := json.MarshalIndent(cfg, "", "    ")
		if err != nil {
			panic(err)
		}

		log.Println(string(configContent))
	}

	return nil
}

func validateConfig() error {
	if cfg.Network == "" {
		return errors.New("network identifier must be set")
	}

	if !strings.HasPrefix(cfg.DiscoveryURL, "http") {
		return errors.New("discovery url must be an http(s) url")
	}

	if cfg.IntervalSec <= 0 {
		return errors.New("polling interval must be greater than 0")
	}

	if cfg.HTTPTimeoutSec <= 0 {
		return errors.New("http timeout must be greater than 0")
	}

	return nil
}
