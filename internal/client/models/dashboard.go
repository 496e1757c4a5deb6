package models

// CaseProgress is one milestone on the client's case timeline.
type CaseProgress struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Notification is shown on the lawyer dashboard.
type Notification struct {
	ID      ID     `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

// ClientDashboard aggregates the client's feeds.
type ClientDashboard struct {
	Appointments []Appointment
	Documents    []Document
	Progress     []CaseProgress
}

// LawyerDashboard aggregates the lawyer's feeds.
type LawyerDashboard struct {
	Appointments  []Appointment
	Documents     []Document
	Notifications []Notification
	Profile       LawyerProfile
}

// ClientPortal is the lawyer's communication portal.
type ClientPortal struct {
	Conversations []Conversation
	Documents     []Document
}
