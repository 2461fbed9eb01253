package repo

import (
	"time"

	"lexcase/models"
	"lexcase/store"
)

// CaseRepository implements the case collection operations
type CaseRepository struct {
	col *store.Collection[models.Case]
}

// NewCaseRepository creates a case repository over the given store
func NewCaseRepository(s *store.Store) *CaseRepository {
	return &CaseRepository{col: store.NewCollection[models.Case](s, CollectionCases)}
}

// CaseUpdate is a partial case update. Nil fields are left unchanged;
// set fields overwrite. Generated fields (id, business codes,
// createdDate) are not assignable, and lastUpdated is always refreshed
// by Update itself.
type CaseUpdate struct {
	Title           *string
	ClientNames     []string
	Category        *string
	Subcategory     *string
	Status          *string
	Priority        *string
	Description     *string
	AssignedLawyer  *string
	NextHearingDate *string
	LastHearingDate *string
	CourtName       *string
	JudgeAssigned   *string
}

func (p CaseUpdate) apply(c *models.Case) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.ClientNames != nil {
		c.ClientNames = p.ClientNames
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.Subcategory != nil {
		c.Subcategory = *p.Subcategory
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Priority != nil {
		c.Priority = *p.Priority
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.AssignedLawyer != nil {
		c.AssignedLawyer = *p.AssignedLawyer
	}
	if p.NextHearingDate != nil {
		c.NextHearingDate = *p.NextHearingDate
	}
	if p.LastHearingDate != nil {
		c.LastHearingDate = *p.LastHearingDate
	}
	if p.CourtName != nil {
		c.CourtName = *p.CourtName
	}
	if p.JudgeAssigned != nil {
		c.JudgeAssigned = *p.JudgeAssigned
	}
}

// GetAll returns every case in insertion order
func (r *CaseRepository) GetAll() ([]models.Case, error) {
	return r.col.All()
}

// GetByID returns the case with the given id, or store.ErrNotFound
func (r *CaseRepository) GetByID(id string) (models.Case, error) {
	return r.col.Find(id)
}

// Create assigns the id, business identifiers and creation dates to the
// given case and appends it. Any caller-supplied values for those fields
// are overwritten.
func (r *CaseRepository) Create(c models.Case) (models.Case, error) {
	now := time.Now()
	c.ID = NewID()
	c.ReferenceNumber, c.FileNumber, c.CaseNumber = CaseIdentifiers(c.ID, now)
	c.CreatedDate = now.Format(DateLayout)
	c.LastUpdated = c.CreatedDate
	return r.col.Append(c)
}

// Update applies the partial update and refreshes lastUpdated to the
// current date, whether or not any other field changed. Returns
// store.ErrNotFound when no case matches.
func (r *CaseRepository) Update(id string, patch CaseUpdate) (models.Case, error) {
	return r.col.Update(id, func(c *models.Case) {
		patch.apply(c)
		c.LastUpdated = today()
	})
}

// Delete removes the case. Related hearings, documents and notes are
// left in place; there is no cascade. Deleting a missing id succeeds.
func (r *CaseRepository) Delete(id string) error {
	return r.col.Delete(id)
}
