package repo

import (
	"lexcase/models"
	"lexcase/store"
)

// NoteRepository implements the note collection operations
type NoteRepository struct {
	col *store.Collection[models.Note]
}

// NewNoteRepository creates a note repository over the given store
func NewNoteRepository(s *store.Store) *NoteRepository {
	return &NoteRepository{col: store.NewCollection[models.Note](s, CollectionNotes)}
}

// NoteUpdate is a partial note update; nil fields are left unchanged.
// The id and the creation date/time are not assignable.
type NoteUpdate struct {
	CaseID  *string
	Content *string
	Author  *string
	Type    *string
	Tags    []string
}

func (p NoteUpdate) apply(n *models.Note) {
	if p.CaseID != nil {
		n.CaseID = *p.CaseID
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Author != nil {
		n.Author = *p.Author
	}
	if p.Type != nil {
		n.Type = *p.Type
	}
	if p.Tags != nil {
		n.Tags = p.Tags
	}
}

// GetByCaseID returns the notes of one case in creation order
func (r *NoteRepository) GetByCaseID(caseID string) ([]models.Note, error) {
	all, err := r.col.All()
	if err != nil {
		return nil, err
	}

	matches := make([]models.Note, 0)
	for _, n := range all {
		if n.CaseID == caseID {
			matches = append(matches, n)
		}
	}
	return matches, nil
}

// Create assigns the id and the current date and clock time, then
// appends the note
func (r *NoteRepository) Create(n models.Note) (models.Note, error) {
	n.ID = NewID()
	n.Date = today()
	n.Time = clockNow()
	return r.col.Append(n)
}

// Update applies the partial update, or returns store.ErrNotFound
func (r *NoteRepository) Update(id string, patch NoteUpdate) (models.Note, error) {
	return r.col.Update(id, patch.apply)
}

// Delete removes the note; deleting a missing id succeeds
func (r *NoteRepository) Delete(id string) error {
	return r.col.Delete(id)
}
