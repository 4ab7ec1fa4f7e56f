package model

// Validatable is the self-check every entity and request runs before any
// persistence work. Implementations return apperr.InvalidRequest errors.
type Validatable interface {
	Validate() error
}
