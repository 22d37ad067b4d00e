package Go_Utils

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every *RangeError.
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidConfig is matched by every *ConfigError.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrNotSum is returned by queries that only make sense on a sum aggregation.
	ErrNotSum = errors.New("operation requires sum aggregation")
)

// RangeError reports an index, range or magnitude outside of what the structure allows.
// Valid is the closed interval [Low, High]; when High<Low the structure was empty.
type RangeError struct {
	Op        string
	Index     int
	Low, High int
	Negative  bool // the magnitude, not the index, was rejected.
}

func (e *RangeError) Error() string {
	if e.Negative {
		return fmt.Sprintf("%s: negative magnitude at index %d", e.Op, e.Index)
	}
	if e.High < e.Low {
		return fmt.Sprintf("%s: index %d on empty structure", e.Op, e.Index)
	}
	return fmt.Sprintf("%s: index %d not in [%d, %d]", e.Op, e.Index, e.Low, e.High)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// CheckIndex returns a *RangeError for op unless low<=i<=high.
func CheckIndex(op string, i, low, high int) error {
	if i < low || i > high {
		return &RangeError{Op: op, Index: i, Low: low, High: high}
	}
	return nil
}

// ConfigError is a programmer error: the structure was built or called in a way it can never serve.
type ConfigError struct {
	Op     string
	Reason string
	cause  error
}

// NewConfigError wraps cause, which may be nil.
func NewConfigError(op, reason string, cause error) *ConfigError {
	return &ConfigError{Op: op, Reason: reason, cause: cause}
}

func (e *ConfigError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func (e *ConfigError) Unwrap() error { return e.cause }
