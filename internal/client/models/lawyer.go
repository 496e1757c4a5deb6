package models

// Lawyer is an immutable search result.
type Lawyer struct {
	ID             ID      `json:"id"`
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	Location       string  `json:"location"`
	Rating         float64 `json:"rating"`
	Experience     string  `json:"experience"`
	Price          string  `json:"price"`
}

// LawyerProfile is the lawyer's own editable profile.
type LawyerProfile struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Qualifications string `json:"qualifications,omitempty"`
	Experience     string `json:"experience,omitempty"`
	Contact        string `json:"contact,omitempty"`
}
