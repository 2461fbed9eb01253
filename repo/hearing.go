package repo

import (
	"lexcase/models"
	"lexcase/store"
)

// HearingRepository implements the hearing collection operations
type HearingRepository struct {
	col *store.Collection[models.Hearing]
}

// NewHearingRepository creates a hearing repository over the given store
func NewHearingRepository(s *store.Store) *HearingRepository {
	return &HearingRepository{col: store.NewCollection[models.Hearing](s, CollectionHearings)}
}

// HearingUpdate is a partial hearing update; nil fields are left
// unchanged. The id is not assignable.
type HearingUpdate struct {
	CaseID    *string
	Date      *string
	Time      *string
	Type      *string
	Status    *string
	Judge     *string
	Courtroom *string
	Outcome   *string
	Notes     *string
}

func (p HearingUpdate) apply(h *models.Hearing) {
	if p.CaseID != nil {
		h.CaseID = *p.CaseID
	}
	if p.Date != nil {
		h.Date = *p.Date
	}
	if p.Time != nil {
		h.Time = *p.Time
	}
	if p.Type != nil {
		h.Type = *p.Type
	}
	if p.Status != nil {
		h.Status = *p.Status
	}
	if p.Judge != nil {
		h.Judge = *p.Judge
	}
	if p.Courtroom != nil {
		h.Courtroom = *p.Courtroom
	}
	if p.Outcome != nil {
		h.Outcome = *p.Outcome
	}
	if p.Notes != nil {
		h.Notes = *p.Notes
	}
}

// GetByCaseID returns the hearings of one case in creation order
func (r *HearingRepository) GetByCaseID(caseID string) ([]models.Hearing, error) {
	all, err := r.col.All()
	if err != nil {
		return nil, err
	}

	matches := make([]models.Hearing, 0)
	for _, h := range all {
		if h.CaseID == caseID {
			matches = append(matches, h)
		}
	}
	return matches, nil
}

// Create assigns the id and appends the hearing. The caseId comes from
// the caller and is not checked against case existence.
func (r *HearingRepository) Create(h models.Hearing) (models.Hearing, error) {
	h.ID = NewID()
	return r.col.Append(h)
}

// Update applies the partial update, or returns store.ErrNotFound
func (r *HearingRepository) Update(id string, patch HearingUpdate) (models.Hearing, error) {
	return r.col.Update(id, patch.apply)
}

// Delete removes the hearing; deleting a missing id succeeds
func (r *HearingRepository) Delete(id string) error {
	return r.col.Delete(id)
}
