package style

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateStyle matches any *DuplicateStyleError via errors.Is.
	ErrDuplicateStyle = errors.New("duplicate style")
	// ErrUnknownStyle matches any *UnknownStyleError via errors.Is.
	ErrUnknownStyle = errors.New("unknown style")
	// ErrRegistrySealed is returned by Register once rendering has begun.
	ErrRegistrySealed = errors.New("style registry is sealed")
)

// DuplicateStyleError reports a second registration under an existing name.
type DuplicateStyleError struct {
	Name string
}

func (e *DuplicateStyleError) Error() string {
	return fmt.Sprintf("style %q already registered", e.Name)
}

func (e *DuplicateStyleError) Is(target error) bool { return target == ErrDuplicateStyle }

// UnknownStyleError reports a lookup of a name that was never registered.
type UnknownStyleError struct {
	Name string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("style %q is not registered", e.Name)
}

func (e *UnknownStyleError) Is(target error) bool { return target == ErrUnknownStyle }
