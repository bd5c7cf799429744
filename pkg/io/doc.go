// Package io groups the packages that read input from disk.
//
// Subpackages:
//   - config: layered connection settings (defaults, file, environment, flags)
//   - varfile: variable files that feed job placeholders
package io
