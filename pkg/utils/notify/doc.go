// Package notify writes typed, symbol-prefixed messages for CLI users.
//
// Message types: success (✔), error (✗), warning (⚠), info (ℹ), activity (►)
// and titles with a leading emoji. [SectionWriter] puts a blank line in front
// of every title after the first so that consecutive sections stay apart.
package notify
