package failure

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfigRead       = errors.New("config read error")
	ErrMissingConfigKey = errors.New("missing config key")
	ErrPathResolution   = errors.New("path resolution error")
	ErrEmptyCatalog     = errors.New("empty catalog")
	ErrWrite            = errors.New("write error")
	ErrInvalidOption    = errors.New("invalid option")
)

// Wrap builds an error message that includes component context while tagging it
// with the provided marker. The marker should be one of the exported sentinel
// errors above; both marker and cause stay reachable through errors.Is.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrConfigRead
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// MissingKeyError reports a required settings key that was absent.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s: missing '%s' key in settings", ErrMissingConfigKey, e.Key)
}

func (e *MissingKeyError) Is(target error) bool {
	return target == ErrMissingConfigKey
}

// ErrorKind implements Classifier.
func (e *MissingKeyError) ErrorKind() string {
	return "missing_config_key"
}

// Classifier lets an error declare its kind directly.
type Classifier interface {
	ErrorKind() string
}

// Kind maps an error to the stable string used in logs.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	var classifier Classifier
	if errors.As(err, &classifier) {
		return classifier.ErrorKind()
	}
	switch {
	case errors.Is(err, ErrMissingConfigKey):
		return "missing_config_key"
	case errors.Is(err, ErrConfigRead):
		return "config_read"
	case errors.Is(err, ErrPathResolution):
		return "path_resolution"
	case errors.Is(err, ErrEmptyCatalog):
		return "empty_catalog"
	case errors.Is(err, ErrWrite):
		return "write"
	case errors.Is(err, ErrInvalidOption):
		return "invalid_option"
	default:
		return "unknown"
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "failure"
	}
	return strings.Join(parts, ": ")
}
