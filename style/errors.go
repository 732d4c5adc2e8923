package style

import "fmt"

// ConfigurationError represents an unrecognized or malformed settings
// override. It is raised by the settings object itself; containers forward
// overrides without pre-validating them.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error for %q: %s", e.Key, e.Reason)
}
