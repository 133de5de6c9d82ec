package repo

import models "github.com/rmoran/stocktrack/internal/models"

// ReferenceRepository defines find-or-create access to a named lookup
// table (suppliers or categories). Name matching is case-sensitive and
// exact; there is no delete.
type ReferenceRepository interface {
	// FindOrCreate returns the row with the given name, creating it if
	// it does not exist yet.
	FindOrCreate(name string) (models.Reference, error)
	// All returns every row, name-ascending.
	All() ([]models.Reference, error)
}
