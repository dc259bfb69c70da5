package xcconfig

import "fmt"

// NotFoundError reports that the root path of a load does not exist. It is
// the only load failure that propagates to the caller; see Loader for the
// nested-include policy.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("xcconfig file not found: %s", e.Path)
}

// AlreadyExistsError reports a write-back onto an existing path without the
// overwrite flag set.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("xcconfig file already exists: %s", e.Path)
}

// CycleError reports an include chain that leads back to a file already
// being loaded. Unlike other nested-include failures it aborts the whole
// load.
type CycleError struct {
	Path string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("xcconfig include cycle detected at %s", e.Path)
}
