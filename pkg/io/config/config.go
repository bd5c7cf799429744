package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Defaults.
const (
	DefaultAddress      = "http://127.0.0.1:4646"
	DefaultPollInterval = 3 * time.Second
	DefaultTimeout      = 30 * time.Minute
)

// Validation errors.
var (
	ErrMissingAddress       = errors.New("scheduler address is required")
	ErrInvalidAddress       = errors.New("scheduler address must be an absolute http or https URL")
	ErrIncompleteClientCert = errors.New("client certificate and key must be set together")
	ErrInvalidPollInterval  = errors.New("poll interval must be positive")
	ErrInvalidTimeout       = errors.New("timeout must be positive")
)

// Config holds the settings for talking to the scheduler.
type Config struct {
	Address   string `mapstructure:"address"   jsonschema:"description=Scheduler HTTP API address"`
	Region    string `mapstructure:"region"    jsonschema:"description=Region to target"`
	Namespace string `mapstructure:"namespace" jsonschema:"description=Namespace to target"`
	Token     string `mapstructure:"token"     jsonschema:"description=ACL token"`

	CACert        string `mapstructure:"ca-cert"         jsonschema:"description=CA certificate file"`
	CAPath        string `mapstructure:"ca-path"         jsonschema:"description=Directory of CA certificates"`
	ClientCert    string `mapstructure:"client-cert"     jsonschema:"description=Client certificate file"`
	ClientKey     string `mapstructure:"client-key"      jsonschema:"description=Client key file"`
	TLSSkipVerify bool   `mapstructure:"tls-skip-verify" jsonschema:"description=Skip server certificate verification"`

	PollInterval time.Duration `mapstructure:"poll-interval" jsonschema:"description=Delay between status polls"`
	Timeout      time.Duration `mapstructure:"timeout"       jsonschema:"description=Give up monitoring after this long"`
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrMissingAddress
	}

	parsed, err := url.Parse(c.Address)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" ||
		(parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, c.Address)
	}

	if (c.ClientCert == "") != (c.ClientKey == "") {
		return ErrIncompleteClientCert
	}

	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPollInterval, c.PollInterval)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Timeout)
	}

	return nil
}
