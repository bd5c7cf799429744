// Package di wires the services a command needs into a per-invocation
// injector.
package di

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Injector is the dependency container handed to command handlers.
type Injector = do.Injector

// Module registers providers with an injector.
type Module func(Injector) error

// Runtime holds the modules applied to every invocation.
type Runtime struct {
	modules []Module
}

// New returns a runtime that applies modules, in order, on each Invoke.
func New(modules ...Module) *Runtime {
	return &Runtime{modules: modules}
}

// Invoke builds a fresh injector, applies the runtime modules followed by
// extra, runs handler and shuts the injector down. Nil modules are skipped.
func (r *Runtime) Invoke(handler func(Injector) error, extra ...Module) error {
	injector := do.New()
	defer injector.Shutdown()

	modules := make([]Module, 0, len(r.modules)+len(extra))
	modules = append(modules, r.modules...)
	modules = append(modules, extra...)

	for _, module := range modules {
		if module == nil {
			continue
		}

		err := module(injector)
		if err != nil {
			return err
		}
	}

	return handler(injector)
}

// RunEWithRuntime adapts a handler that takes an injector into a cobra RunE.
func RunEWithRuntime(
	runtime *Runtime,
	handler func(cmd *cobra.Command, injector Injector) error,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return runtime.Invoke(func(injector Injector) error {
			return handler(cmd, injector)
		})
	}
}
