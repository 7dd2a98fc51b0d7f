// Package config loads and validates the assistant's YAML configuration
// and watches the config file for mid-session changes.
package config
