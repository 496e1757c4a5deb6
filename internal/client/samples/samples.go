// Package samples holds the demo datasets shown when the backend cannot be
// reached. Every accessor returns a fresh copy so callers may mutate it.
package samples

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

var lawyers = []models.Lawyer{
	{ID: "1", Name: "John Smith", Specialization: "Criminal Law", Location: "New York, NY", Rating: 4.5, Experience: "10 years", Price: "$200/hour"},
	{ID: "2", Name: "Sarah Johnson", Specialization: "Corporate Law", Location: "Los Angeles, CA", Rating: 4.8, Experience: "15 years", Price: "$250/hour"},
	{ID: "3", Name: "Michael Brown", Specialization: "Family Law", Location: "Chicago, IL", Rating: 4.2, Experience: "8 years", Price: "$180/hour"},
	{ID: "4", Name: "Emily Davis", Specialization: "Real Estate Law", Location: "Miami, FL", Rating: 4.7, Experience: "12 years", Price: "$220/hour"},
	{ID: "5", Name: "David Wilson", Specialization: "Immigration Law", Location: "San Francisco, CA", Rating: 4.6, Experience: "9 years", Price: "$190/hour"},
	{ID: "6", Name: "Lisa Anderson", Specialization: "Intellectual Property", Location: "Boston, MA", Rating: 4.9, Experience: "18 years", Price: "$300/hour"},
}

func Lawyers() []models.Lawyer { return slices.Clone(lawyers) }

func ClientAppointments() []models.Appointment {
	return []models.Appointment{
		{ID: "1", CounterpartyName: "John Smith", Date: "2024-01-15", Time: "10:00 AM", Status: models.AppointmentUpcoming, Reason: "Initial Consultation"},
		{ID: "2", CounterpartyName: "Sarah Johnson", Date: "2024-01-20", Time: "2:00 PM", Status: models.AppointmentUpcoming, Reason: "Case Review"},
	}
}

func ClientDocuments() []models.Document {
	return []models.Document{
		{ID: "1", Name: "Contract_Review.pdf", UploadedAt: "2024-01-10", Size: "2.5 MB"},
		{ID: "2", Name: "Legal_Document.docx", UploadedAt: "2024-01-12", Size: "1.8 MB"},
	}
}

func CaseProgress() []models.CaseProgress {
	return []models.CaseProgress{
		{Title: "Case Filed", Date: "2024-01-05", Description: "Initial case documents submitted"},
		{Title: "First Consultation", Date: "2024-01-10", Description: "Met with lawyer for initial consultation"},
		{Title: "Document Review", Date: "2024-01-12", Description: "All documents reviewed and approved"},
	}
}

func LawyerAppointments() []models.Appointment {
	return []models.Appointment{
		{ID: "1", CounterpartyName: "Jane Doe", Date: "2024-01-15", Time: "10:00 AM", Status: models.AppointmentUpcoming, Reason: "Initial Consultation"},
		{ID: "2", CounterpartyName: "Bob Smith", Date: "2024-01-16", Time: "2:00 PM", Status: models.AppointmentUpcoming, Reason: "Case Review"},
	}
}

func LawyerDocuments() []models.Document {
	return []models.Document{
		{ID: "1", OwnerOrClientName: "Jane Doe", Name: "Contract_Review.pdf", UploadedAt: "2024-01-10", Size: "2.5 MB"},
		{ID: "2", OwnerOrClientName: "Bob Smith", Name: "Case_Documents.zip", UploadedAt: "2024-01-09", Size: "15 MB"},
	}
}

func Notifications() []models.Notification {
	return []models.Notification{
		{ID: "1", Type: "chat", Message: "New message from Jane Doe", Time: "2 hours ago"},
		{ID: "2", Type: "appointment", Message: "New appointment request from Bob Smith", Time: "5 hours ago"},
	}
}

func LawyerProfile() models.LawyerProfile {
	return models.LawyerProfile{
		Name:           "John Smith",
		Specialization: "Criminal Law",
		Location:       "New York, NY",
		Bio:            "Experienced criminal defense attorney",
	}
}

// ClientConversations lists the lawyers a client chats with.
func ClientConversations() []models.Conversation {
	return []models.Conversation{
		{ID: "1", CounterpartyID: "1", CounterpartyName: "John Smith", LastMessagePreview: "Thank you for the document."},
		{ID: "2", CounterpartyID: "2", CounterpartyName: "Sarah Johnson", LastMessagePreview: "See you at the appointment."},
	}
}

// LawyerConversations lists the clients a lawyer chats with.
func LawyerConversations() []models.Conversation {
	return []models.Conversation{
		{ID: "1", CounterpartyID: "1", CounterpartyName: "Jane Doe", LastMessagePreview: "Please review the contract", UnreadCount: 2},
		{ID: "2", CounterpartyID: "2", CounterpartyName: "Bob Smith", LastMessagePreview: "Thank you for the advice"},
	}
}

// Messages is a short demo exchange with counterparty, timestamped
// relative to now.
func Messages(counterparty models.Conversation, now time.Time) []models.Message {
	cp := counterparty.CounterpartyID.String()
	return []models.Message{
		{ID: "1", SenderID: cp, SenderName: counterparty.CounterpartyName, Text: "Hello, how can I help you?", Timestamp: now.Add(-time.Hour), Status: models.MessageConfirmed},
		{ID: "2", SenderID: models.CurrentUserMarker, SenderName: "You", Text: "I have a question about my case.", Timestamp: now.Add(-30 * time.Minute), Status: models.MessageConfirmed},
		{ID: "3", SenderID: cp, SenderName: counterparty.CounterpartyName, Text: "Sure, what would you like to know?", Timestamp: now.Add(-15 * time.Minute), Status: models.MessageConfirmed},
	}
}

func Cases() []models.Case {
	return []models.Case{
		{ID: "1", Title: "Property Dispute Case", Status: models.CaseInProgress, LastUpdate: "2024-01-15", Description: "Dispute over property boundaries with neighbor."},
		{ID: "2", Title: "Contract Breach Lawsuit", Status: models.CasePendingReview, LastUpdate: "2024-01-10", Description: "Client suing for breach of contract terms."},
	}
}

func LegalUpdates() []models.LegalUpdate {
	return []models.LegalUpdate{
		{
			ID: "1", Title: "New Data Protection Regulations", Date: "2024-01-20", Category: "Privacy Law",
			Summary: "Updated regulations regarding personal data handling and privacy protection.",
			Content: "The new regulations require enhanced data protection measures for all businesses handling personal information. Companies must implement stricter consent mechanisms and provide clearer privacy notices to users.",
		},
		{
			ID: "2", Title: "Supreme Court Ruling on Contract Law", Date: "2024-01-18", Category: "Contract Law",
			Summary: "Recent Supreme Court decision impacts contract interpretation standards.",
			Content: "The Supreme Court has established new guidelines for contract interpretation, emphasizing the importance of clear language and mutual intent in contractual agreements.",
		},
		{
			ID: "3", Title: "Changes to Employment Legislation", Date: "2024-01-15", Category: "Employment Law",
			Summary: "Updates to workplace regulations and employee rights.",
			Content: "New legislation provides enhanced protections for remote workers and updates minimum wage standards across various industries.",
		},
	}
}
