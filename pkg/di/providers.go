package di

import (
	"github.com/devantler-tech/jobplan/pkg/client/nomad"
	"github.com/devantler-tech/jobplan/pkg/io/config"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
)

// Dependency providers.

// NewRuntime constructs the runtime shared by the commands. Configuration is
// loaded lazily from manager, so flags parsed after construction still apply.
func NewRuntime(manager *config.Manager, logger logrus.FieldLogger, userAgent string) *Runtime {
	return New(
		ProvideLogger(logger),
		ProvideConfig(manager),
		ProvideClient(userAgent),
	)
}

// ProvideLogger registers logger.
func ProvideLogger(logger logrus.FieldLogger) Module {
	return func(i Injector) error {
		do.ProvideValue(i, logger)

		return nil
	}
}

// ProvideConfig registers the configuration loaded from manager.
func ProvideConfig(manager *config.Manager) Module {
	return func(i Injector) error {
		do.Provide(i, func(Injector) (*config.Config, error) {
			return manager.Load()
		})

		return nil
	}
}

// ProvideClient registers the scheduler client, built from the configuration
// and logger in the same injector.
func ProvideClient(userAgent string) Module {
	return func(i Injector) error {
		do.Provide(i, func(i Injector) (nomad.API, error) {
			cfg, err := ResolveConfig(i)
			if err != nil {
				return nil, err
			}

			logger, err := ResolveLogger(i)
			if err != nil {
				return nil, err
			}

			return nomad.New(cfg, nomad.WithLogger(logger), nomad.WithUserAgent(userAgent))
		})

		return nil
	}
}
