package repo

import (
	"log"

	"lexcase/models"
	"lexcase/store"
)

// SeedSampleCases writes the demo case when the case collection is
// empty. Safe to run on every start: it is a no-op whenever any case
// exists and never overwrites or duplicates data.
func SeedSampleCases(s *store.Store) error {
	col := store.NewCollection[models.Case](s, CollectionCases)

	existing, err := col.All()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Println("[SEED] Case collection already populated, skipping sample data")
		return nil
	}

	sample := models.Case{
		ID:              "1",
		ReferenceNumber: "LC-2024-001",
		FileNumber:      "F-001-2024",
		CaseNumber:      "C-24-001",
		Title:           "Loan Settlement Dispute",
		ClientNames:     []string{"Johnson & Associates", "ABC Corporation"},
		Category:        "Financial",
		Subcategory:     "Loan Settlement",
		Status:          models.CaseStatusActive,
		Priority:        models.CasePriorityHigh,
		Description:     "Complex loan settlement case involving multiple parties and significant financial exposure.",
		CreatedDate:     "2024-01-15",
		LastUpdated:     "2024-12-15",
		AssignedLawyer:  "Sarah Johnson",
		NextHearingDate: "2024-12-28",
		LastHearingDate: "2024-11-15",
		CourtName:       "District Court Central",
		JudgeAssigned:   "Hon. Michael Roberts",
	}

	if err := col.Replace([]models.Case{sample}); err != nil {
		return err
	}

	log.Printf("[SEED] Created sample case %s", sample.ReferenceNumber)
	return nil
}
