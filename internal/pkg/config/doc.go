// Package config provides the settings of the provider adapter and its tooling.
//
// Settings are read from a YAML file, may be overridden through environment variables
// and are validated before use.
package config
