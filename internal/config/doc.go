// Package config loads and validates monitor configuration.
//
// Config is YAML with ${VAR} environment substitution, so credentials can
// stay in the environment (or a .env file) while everything else lives in
// the config file.
package config
