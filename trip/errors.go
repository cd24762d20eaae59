package trip

import (
	"errors"
	"fmt"
)

// ErrLocationNotFound matches any *LocationNotFoundError via errors.Is.
var ErrLocationNotFound = errors.New("location not found")

// LocationNotFoundError reports an identifier missing from the location table.
type LocationNotFoundError struct {
	ID   string
	Role string // "home base", "pickup", "dropoff" or "location"
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Role, e.ID, ErrLocationNotFound)
}

func (e *LocationNotFoundError) Is(target error) bool {
	return target == ErrLocationNotFound
}
