package importer

import "fmt"

// PreconditionError - ресурс, без которого импорт невозможен, отсутствует еще до начала работы.
type PreconditionError struct {
	Resource string
	Err      error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition failed: %s: %v", e.Resource, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}
