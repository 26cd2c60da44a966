// Package cmd implements the envokit CLI commands using Cobra.
//
// Available commands:
//   - call: Issue a single request against a configured envelope API
//   - version: Show envokit version information
//
// The CLI loads connection settings from an envokit config file and lets
// flags override individual values per invocation.
package cmd
