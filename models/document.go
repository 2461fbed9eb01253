package models

// Document status constants
const (
	DocumentStatusApproved      = "Approved"
	DocumentStatusPendingReview = "Pending Review"
	DocumentStatusInReview      = "In Review"
	DocumentStatusRequired      = "Required"
	DocumentStatusRejected      = "Rejected"
)

// Document represents a file attached to a case. Documents are immutable
// once uploaded; the only mutation is deletion.
type Document struct {
	ID          string `json:"id"`
	CaseID      string `json:"caseId"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	UploadDate  string `json:"uploadDate"`
	UploadedBy  string `json:"uploadedBy"`
	Size        string `json:"size"`
	Status      string `json:"status"`
	HearingDate string `json:"hearingDate,omitempty"`
}

// RecordID implements store.Record
func (d Document) RecordID() string {
	return d.ID
}

// IsValidDocumentStatus checks if the status is valid
func IsValidDocumentStatus(status string) bool {
	switch status {
	case DocumentStatusApproved, DocumentStatusPendingReview,
		DocumentStatusInReview, DocumentStatusRequired, DocumentStatusRejected:
		return true
	}
	return false
}
