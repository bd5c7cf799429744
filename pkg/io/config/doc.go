// Package config loads the scheduler connection settings.
//
// Values are layered as defaults < jobplan.yaml < environment < flags. The
// environment uses the scheduler's own variable names (NOMAD_ADDR,
// NOMAD_TOKEN, ...) so that an existing shell setup keeps working.
package config
