package repo

import (
	"lexcase/models"
	"lexcase/store"
)

// DocumentRepository implements the document collection operations.
// Documents are immutable once uploaded, so no update is exposed.
type DocumentRepository struct {
	col *store.Collection[models.Document]
}

// NewDocumentRepository creates a document repository over the given store
func NewDocumentRepository(s *store.Store) *DocumentRepository {
	return &DocumentRepository{col: store.NewCollection[models.Document](s, CollectionDocuments)}
}

// GetByCaseID returns the documents of one case in creation order
func (r *DocumentRepository) GetByCaseID(caseID string) ([]models.Document, error) {
	all, err := r.col.All()
	if err != nil {
		return nil, err
	}

	matches := make([]models.Document, 0)
	for _, d := range all {
		if d.CaseID == caseID {
			matches = append(matches, d)
		}
	}
	return matches, nil
}

// Create assigns the id and upload date and appends the document
func (r *DocumentRepository) Create(d models.Document) (models.Document, error) {
	d.ID = NewID()
	d.UploadDate = today()
	return r.col.Append(d)
}

// Delete removes the document; deleting a missing id succeeds
func (r *DocumentRepository) Delete(id string) error {
	return r.col.Delete(id)
}
