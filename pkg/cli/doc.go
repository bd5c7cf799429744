// Package cli provides the command tree and its terminal helpers.
//
//   - cli/cmd: cobra commands
//   - cli/ui: terminal width detection
//   - cli/ui/errorhandler: normalisation of cobra errors
package cli
