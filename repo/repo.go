// Package repo contains the typed entity repositories over the shared
// collection store. Each repository owns one collection and implements
// the create/read/update/delete and caseId-query operations for its
// entity. Repositories do not validate cross-entity references: a
// hearing, document or note may point at a caseId that no longer exists,
// and deleting a case leaves its related records in place.
package repo

// Collection keys in the durable store, one per entity type.
const (
	CollectionCases     = "cases"
	CollectionHearings  = "hearings"
	CollectionDocuments = "documents"
	CollectionNotes     = "notes"
)
