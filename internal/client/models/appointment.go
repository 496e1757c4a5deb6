package models

import "encoding/json"

type AppointmentStatus string

const (
	AppointmentUpcoming  AppointmentStatus = "upcoming"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment as listed on either dashboard. CounterpartyName is the lawyer
// for a client and the client for a lawyer.
type Appointment struct {
	ID               ID                `json:"id"`
	CounterpartyName string            `json:"counterpartyName"`
	Date             string            `json:"date"`
	Time             string            `json:"time"`
	Reason           string            `json:"reason"`
	Status           AppointmentStatus `json:"status"`
	Notes            string            `json:"notes,omitempty"`
}

// UnmarshalJSON also accepts the role-specific lawyerName / clientName keys.
func (a *Appointment) UnmarshalJSON(b []byte) error {
	type plain Appointment
	var aux struct {
		plain
		LawyerName string `json:"lawyerName"`
		ClientName string `json:"clientName"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*a = Appointment(aux.plain)
	if a.CounterpartyName == "" {
		a.CounterpartyName = aux.LawyerName
	}
	if a.CounterpartyName == "" {
		a.CounterpartyName = aux.ClientName
	}
	return nil
}

// AppointmentRequest is posted to /api/appointments.
type AppointmentRequest struct {
	LawyerID ID     `json:"lawyerId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Reason   string `json:"reason"`
	Notes    string `json:"notes,omitempty"`
}
