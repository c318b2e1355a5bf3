package services

import "fmt"

// NotFoundError is raised when a referenced entity id does not resolve. It
// aborts the remainder of the operation at the point of resolution.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ConflictError is raised when a uniqueness check fails (project key,
// username, email) before any write begins.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
