package postgres

import "errors"

var (
	// ErrConflict means a guarded write found the row in a different state
	// than the caller observed (lost CAS).
	ErrConflict = errors.New("conflicting concurrent update")

	// ErrDuplicate means a create hit an existing primary key.
	ErrDuplicate = errors.New("duplicate key")
)
