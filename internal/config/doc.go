// Package config manages user-level settings stored at ~/.stackui/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default registry path used when no --registry flag is given.
package config
