package models

// CaseStatus is the lifecycle label of a tracked case.
type CaseStatus string

const (
	CaseInProgress    CaseStatus = "In Progress"
	CasePendingReview CaseStatus = "Pending Review"
	CaseCompleted     CaseStatus = "Completed"
	CaseOnHold        CaseStatus = "On Hold"
)

// Color is the hex colour used when rendering the status badge.
func (s CaseStatus) Color() string {
	switch s {
	case CaseInProgress:
		return "#007bff"
	case CasePendingReview:
		return "#ffc107"
	case CaseCompleted:
		return "#28a745"
	default:
		return "#6c757d"
	}
}

type Case struct {
	ID          ID         `json:"id"`
	Title       string     `json:"title"`
	Status      CaseStatus `json:"status"`
	LastUpdate  string     `json:"lastUpdate"`
	Description string     `json:"description"`
}

// LegalUpdate is a regulatory news item.
type LegalUpdate struct {
	ID       ID     `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
}

// AllCategories selects every legal update.
const AllCategories = "All"

// LegalUpdateCategories lists the selectable filter values.
var LegalUpdateCategories = []string{AllCategories, "Privacy Law", "Contract Law", "Employment Law", "Criminal Law", "Property Law"}
