// Package config manages user-level settings stored at ~/.bspy/config.yaml.
// Settings can also be supplied through BSPY_* environment variables, e.g.
// BSPY_AUTHOR_NAME overrides the author.name key.
package config
