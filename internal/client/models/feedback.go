package models

import "time"

// FeedbackCategories lists the accepted feedback categories.
var FeedbackCategories = []string{"General", "Lawyer Service", "Platform Usability", "Customer Support", "Billing"}

type Feedback struct {
	ID        string
	Rating    int
	Comment   string
	Category  string
	CreatedAt time.Time
}
