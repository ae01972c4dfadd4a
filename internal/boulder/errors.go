package boulder

import "fmt"

// ParseError reports a malformed level string.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("boulder: malformed level: %s", e.Reason)
}

// ArgumentError reports an out-of-range or otherwise invalid argument to a
// public operation (bad coordinates, an action outside [0,4)).
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("boulder: invalid argument: %s", e.Reason)
}
