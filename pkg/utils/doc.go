// Package utils provides small packages shared across jobplan.
//
//   - envvar: placeholder lookup against variables and the environment
//   - notify: symbol-prefixed messages for CLI users
package utils
