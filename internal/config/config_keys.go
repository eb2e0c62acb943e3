// config_keys.go provides key-value access to configuration settings.
//
// The CLI and MCP surfaces address settings by dotted string keys
// ("defaults.round"). Pointers in the YAML structs distinguish "not set"
// from an explicit zero so defaults apply only to unset keys.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/dur/duration"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name", "author.email",
		"defaults.round", "defaults.truncate",
		"log.enabled",
		"limits.max_input",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "author.email":
		return c.Author.Email, nil
	case "defaults.round":
		return c.RoundUnit().String(), nil
	case "defaults.truncate":
		return c.TruncateUnit().String(), nil
	case "log.enabled":
		return strconv.FormatBool(c.LogEnabled()), nil
	case "limits.max_input":
		return strconv.Itoa(c.MaxInput()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "defaults.round":
		d, err := positive(key, value)
		if err != nil {
			return err
		}
		c.Defaults.Round = &d
	case "defaults.truncate":
		d, err := positive(key, value)
		if err != nil {
			return err
		}
		c.Defaults.Truncate = &d
	case "log.enabled":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: log.enabled must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Log.Enabled = &b
	case "limits.max_input":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMaxInput || n > MaxMaxInput {
			return fmt.Errorf("%w: limits.max_input must be an integer between %d and %d",
				ErrInvalidValue, MinMaxInput, MaxMaxInput)
		}
		c.Limits.MaxInput = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// positive parses value as a duration greater than zero.
func positive(key, value string) (duration.Duration, error) {
	d, err := duration.Parse(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidValue, key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive duration", ErrInvalidValue, key)
	}
	return d, nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"author.name":       c.Author.Name,
		"author.email":      c.Author.Email,
		"defaults.round":    c.RoundUnit().String(),
		"defaults.truncate": c.TruncateUnit().String(),
		"log.enabled":       strconv.FormatBool(c.LogEnabled()),
		"limits.max_input":  strconv.Itoa(c.MaxInput()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "author.email":
		return c.Author.Email != ""
	case "defaults.round":
		return c.Defaults.Round != nil
	case "defaults.truncate":
		return c.Defaults.Truncate != nil
	case "log.enabled":
		return c.Log.Enabled != nil
	case "limits.max_input":
		return c.Limits.MaxInput != nil
	default:
		return false
	}
}
