package common

import "fmt"

// NotFoundError reports a lookup by title, name or index that matched
// nothing.
type NotFoundError struct {
	Kind string // what was looked up: "panel", "category", "widget"
	Key  string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// ConfigurationError reports an invalid or disallowed configuration change,
// such as resizing a panel's row capacity after construction.
type ConfigurationError struct {
	Reason string
}

func (e ConfigurationError) Error() string {
	return e.Reason
}
