package datastruct

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrInvalidArgument is returned when a container is configured with an unusable value,
	// such as a non-positive capacity.
	ErrInvalidArgument errorkit.Error = "ErrInvalidArgument"
	// ErrNoSuchElement is returned when an element is requested from an exhausted iterator
	// or from an empty container.
	ErrNoSuchElement errorkit.Error = "ErrNoSuchElement"
	// ErrInvalidCursorState is returned when Iterator.Remove is called
	// before the first Next, or twice without an intervening Next.
	ErrInvalidCursorState errorkit.Error = "ErrInvalidCursorState"
)
