package models

// Hearing status constants
const (
	HearingStatusScheduled = "Scheduled"
	HearingStatusCompleted = "Completed"
	HearingStatusCancelled = "Cancelled"
	HearingStatusPostponed = "Postponed"
)

// Hearing represents a scheduled or past court hearing for a case.
// CaseID is a back-reference to Case.ID; it is not validated against
// case existence (caller responsibility).
type Hearing struct {
	ID        string `json:"id"`
	CaseID    string `json:"caseId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	Judge     string `json:"judge"`
	Courtroom string `json:"courtroom"`
	Outcome   string `json:"outcome,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// RecordID implements store.Record
func (h Hearing) RecordID() string {
	return h.ID
}

// IsValidHearingStatus checks if the status is valid
func IsValidHearingStatus(status string) bool {
	switch status {
	case HearingStatusScheduled, HearingStatusCompleted,
		HearingStatusCancelled, HearingStatusPostponed:
		return true
	}
	return false
}
