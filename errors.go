package sandbox

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned for malformed drawing or configuration
	// arguments. The caller can recover and continue.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLookupMiss reports that a coordinate-based lookup found nothing.
	// It is meant to be logged and treated as an absent result.
	ErrLookupMiss = errors.New("lookup miss")

	// ErrInvalidState is returned when a lifecycle method is called in the
	// wrong state, such as starting an App twice.
	ErrInvalidState = errors.New("invalid state")
)

// hookError wraps an error returned by an extension hook. Hook errors are
// fatal to the loop.
func hookError(hook string, err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "sandbox: %s", hook)
}
