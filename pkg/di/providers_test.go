package di_test

import (
	"testing"

	"github.com/devantler-tech/jobplan/pkg/di"
	"github.com/devantler-tech/jobplan/pkg/io/config"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, args ...string) *config.Manager {
	t.Helper()

	manager := config.NewManager()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	manager.AddFlags(flags)
	require.NoError(t, flags.Parse(args))

	return manager
}

func TestNewRuntime_ProvidesClient(t *testing.T) {
	t.Parallel()

	logger, _ := test.NewNullLogger()
	runtime := di.NewRuntime(newManager(t, "--address", "http://nomad.example:4646"), logger, "jobplan/test")

	err := runtime.Invoke(func(injector di.Injector) error {
		cfg, err := di.ResolveConfig(injector)
		require.NoError(t, err)
		assert.Equal(t, "http://nomad.example:4646", cfg.Address)

		resolvedLogger, err := di.ResolveLogger(injector)
		require.NoError(t, err)
		assert.Same(t, logger, resolvedLogger)

		client, err := di.ResolveClient(injector)
		require.NoError(t, err)
		assert.NotNil(t, client)

		return nil
	})

	require.NoError(t, err)
}

func TestNewRuntime_InvalidConfigFailsClient(t *testing.T) {
	t.Parallel()

	logger, _ := test.NewNullLogger()
	runtime := di.NewRuntime(newManager(t, "--address", "nomad.example:4646"), logger, "jobplan/test")

	err := runtime.Invoke(func(injector di.Injector) error {
		_, err := di.ResolveClient(injector)

		return err
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolve scheduler client dependency")
	assert.Contains(t, err.Error(), config.ErrInvalidAddress.Error())
}
