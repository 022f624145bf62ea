package section

import "fmt"

// ConfigError reports structurally invalid input: a caller bug such as a
// non-enumerated grade or a non-positive dimension. It is never used for
// code non-compliance, which is reported as data by the checker.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return e.msg
}

// Errorf builds a ConfigError with a formatted message.
func Errorf(format string, args ...any) error {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}
