package config

import (
	"errors"
	"fmt"
	"time"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyAddress       = "address"
	KeyRegion        = "region"
	KeyNamespace     = "namespace"
	KeyToken         = "token"
	KeyCACert        = "ca-cert"
	KeyCAPath        = "ca-path"
	KeyClientCert    = "client-cert"
	KeyClientKey     = "client-key"
	KeyTLSSkipVerify = "tls-skip-verify"
	KeyPollInterval  = "poll-interval"
	KeyTimeout       = "timeout"
)

// FileName is the base name of the optional configuration file.
const FileName = "jobplan"

type setting struct {
	key   string
	env   string
	value any
	usage string
}

//nolint:gochecknoglobals // fixed table of settings
var settings = []setting{
	{KeyAddress, "NOMAD_ADDR", DefaultAddress, "address of the scheduler HTTP API"},
	{KeyRegion, "NOMAD_REGION", "", "region to send requests to"},
	{KeyNamespace, "NOMAD_NAMESPACE", "", "namespace of the job"},
	{KeyToken, "NOMAD_TOKEN", "", "ACL token sent with every request"},
	{KeyCACert, "NOMAD_CACERT", "", "PEM CA certificate file to verify the server"},
	{KeyCAPath, "NOMAD_CAPATH", "", "directory of PEM CA certificates to verify the server"},
	{KeyClientCert, "NOMAD_CLIENT_CERT", "", "PEM client certificate for mutual TLS"},
	{KeyClientKey, "NOMAD_CLIENT_KEY", "", "PEM client key for mutual TLS"},
	{KeyTLSSkipVerify, "NOMAD_SKIP_VERIFY", false, "skip verification of the server certificate"},
	{KeyPollInterval, "JOBPLAN_POLL_INTERVAL", DefaultPollInterval, "interval between status polls"},
	{KeyTimeout, "JOBPLAN_TIMEOUT", DefaultTimeout, "maximum time to wait for evaluations and deployments"},
}

// Manager layers defaults, the configuration file, the environment and
// flags into a Config.
type Manager struct {
	Viper      *viper.Viper
	configFile string
}

// NewManager returns a manager with defaults and environment bindings set.
func NewManager() *Manager {
	viperInstance := viper.New()
	viperInstance.SetConfigName(FileName)
	viperInstance.SetConfigType("yaml")
	viperInstance.AddConfigPath(".")

	for _, s := range settings {
		viperInstance.SetDefault(s.key, s.value)
		_ = viperInstance.BindEnv(s.key, s.env)
	}

	return &Manager{Viper: viperInstance}
}

// AddFlags registers one persistent flag per setting plus --config, and binds
// them so that explicitly set flags win.
func (m *Manager) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(&m.configFile, "config", "", "path to a configuration file (default ./"+FileName+".yaml)")

	for _, s := range settings {
		switch value := s.value.(type) {
		case bool:
			flags.Bool(s.key, value, s.usage+" ($"+s.env+")")
		case time.Duration:
			flags.Duration(s.key, value, s.usage+" ($"+s.env+")")
		case string:
			flags.String(s.key, value, s.usage+" ($"+s.env+")")
		}

		_ = m.Viper.BindPFlag(s.key, flags.Lookup(s.key))
	}
}

// Load reads the configuration file if there is one, decodes every layer and
// validates the result. A missing default file is not an error; a missing
// --config file is.
func (m *Manager) Load() (*Config, error) {
	if m.configFile != "" {
		m.Viper.SetConfigFile(m.configFile)
	}

	err := m.Viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}

	err = m.Viper.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// ConfigFileUsed returns the path of the file that was read, if any.
func (m *Manager) ConfigFileUsed() string {
	return m.Viper.ConfigFileUsed()
}
