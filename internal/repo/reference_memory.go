package repo

import (
	"sort"

	models "github.com/rmoran/stocktrack/internal/models"
)

// InMemoryReferenceRepository is an in-memory implementation of
// ReferenceRepository.
type InMemoryReferenceRepository struct {
	refs   []models.Reference
	nextID int
}

// NewInMemoryReferenceRepository creates a new instance of InMemoryReferenceRepository.
func NewInMemoryReferenceRepository() *InMemoryReferenceRepository {
	return &InMemoryReferenceRepository{
		refs:   []models.Reference{},
		nextID: 1,
	}
}

// FindOrCreate returns the row with the given name, creating it first
// if no row has that exact name.
func (r *InMemoryReferenceRepository) FindOrCreate(name string) (models.Reference, error) {
	for _, ref := range r.refs {
		if ref.Name == name {
			return ref, nil
		}
	}
	ref := models.Reference{ID: r.nextID, Name: name}
	r.nextID++
	r.refs = append(r.refs, ref)
	return ref, nil
}

// All returns every row, name-ascending.
func (r *InMemoryReferenceRepository) All() ([]models.Reference, error) {
	out := make([]models.Reference, len(r.refs))
	copy(out, r.refs)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// NameByID resolves a reference name for joined item reads.
func (r *InMemoryReferenceRepository) NameByID(id int) string {
	for _, ref := range r.refs {
		if ref.ID == id {
			return ref.Name
		}
	}
	return ""
}

// Clear removes all rows.
func (r *InMemoryReferenceRepository) Clear() {
	r.refs = []models.Reference{}
	r.nextID = 1
}
