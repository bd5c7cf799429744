package di

import (
	"fmt"

	"github.com/devantler-tech/jobplan/pkg/client/nomad"
	"github.com/devantler-tech/jobplan/pkg/io/config"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Dependency resolvers.

// ResolveLogger retrieves the logger.
func ResolveLogger(injector Injector) (logrus.FieldLogger, error) {
	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve logger dependency: %w", err)
	}

	return logger, nil
}

// ResolveConfig retrieves the validated configuration.
func ResolveConfig(injector Injector) (*config.Config, error) {
	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve config dependency: %w", err)
	}

	return cfg, nil
}

// ResolveClient retrieves the scheduler client.
func ResolveClient(injector Injector) (nomad.API, error) {
	client, err := do.Invoke[nomad.API](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve scheduler client dependency: %w", err)
	}

	return client, nil
}

// Handler decorators.

// WithClient decorates a handler so that it receives the scheduler client.
func WithClient(
	handler func(cmd *cobra.Command, injector Injector, client nomad.API) error,
) func(cmd *cobra.Command, injector Injector) error {
	return func(cmd *cobra.Command, injector Injector) error {
		client, err := ResolveClient(injector)
		if err != nil {
			return err
		}

		return handler(cmd, injector, client)
	}
}
