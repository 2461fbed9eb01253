package models

// Case status constants
const (
	CaseStatusActive  = "Active"
	CaseStatusPending = "Pending"
	CaseStatusClosed  = "Closed"
)

// Case priority constants
const (
	CasePriorityHigh   = "High"
	CasePriorityMedium = "Medium"
	CasePriorityLow    = "Low"
)

// Case represents a legal case. Business identifiers (ReferenceNumber,
// FileNumber, CaseNumber) are assigned once at creation and never
// regenerated; see repo.CaseIdentifiers for their formats.
type Case struct {
	ID              string   `json:"id"`
	ReferenceNumber string   `json:"referenceNumber"`
	FileNumber      string   `json:"fileNumber"`
	CaseNumber      string   `json:"caseNumber"`
	Title           string   `json:"title"`
	ClientNames     []string `json:"clientNames"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory"`
	Status          string   `json:"status"`
	Priority        string   `json:"priority"`
	Description     string   `json:"description"`
	CreatedDate     string   `json:"createdDate"`
	LastUpdated     string   `json:"lastUpdated"`
	AssignedLawyer  string   `json:"assignedLawyer"`
	NextHearingDate string   `json:"nextHearingDate,omitempty"`
	LastHearingDate string   `json:"lastHearingDate,omitempty"`
	CourtName       string   `json:"courtName,omitempty"`
	JudgeAssigned   string   `json:"judgeAssigned,omitempty"`
}

// RecordID implements store.Record
func (c Case) RecordID() string {
	return c.ID
}

// IsActive checks if the case is active
func (c *Case) IsActive() bool {
	return c.Status == CaseStatusActive
}

// IsClosed checks if the case is closed
func (c *Case) IsClosed() bool {
	return c.Status == CaseStatusClosed
}

// IsValidCaseStatus checks if the status is valid
func IsValidCaseStatus(status string) bool {
	switch status {
	case CaseStatusActive, CaseStatusPending, CaseStatusClosed:
		return true
	}
	return false
}

// IsValidCasePriority checks if the priority is valid
func IsValidCasePriority(priority string) bool {
	switch priority {
	case CasePriorityHigh, CasePriorityMedium, CasePriorityLow:
		return true
	}
	return false
}
