package models

// Note represents a free-form annotation on a case.
type Note struct {
	ID      string   `json:"id"`
	CaseID  string   `json:"caseId"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Date    string   `json:"date"`
	Time    string   `json:"time"`
	Type    string   `json:"type"`
	Tags    []string `json:"tags"`
}

// RecordID implements store.Record
func (n Note) RecordID() string {
	return n.ID
}
