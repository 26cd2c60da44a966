// Package config handles file configuration for envokit clients.
//
// It provides functionality for:
//   - Loading configuration from .envokit.yml or envokit.yml files
//   - Default values and explicit-wins merging
//   - Watching a config file so an embedding process can re-initialize
//     its client when the file changes
package config
