// Package cmd provides the command-line interface of jobplan.
//
// The root command carries the connection flags shared by every subcommand:
//   - plan: show what the scheduler would change for one or more job files
//   - deploy: plan, submit and follow a job until its deployment settles
//   - validate: check a job file without submitting it
//   - stop: deregister a job and follow the resulting evaluation
//   - render: print a job file with its placeholders expanded
//   - show: render a saved plan response offline
package cmd
