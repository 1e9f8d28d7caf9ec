package domain

// CaseFilter narrows the case list. Every non-nil field must match (AND).
type CaseFilter struct {
	Status  *CaseStatus
	Urgency *Urgency
	// City matches the person's city case-insensitively as a substring.
	City *string
}

// PersonFilter narrows the people list.
type PersonFilter struct {
	// City matches exactly.
	City *string
	// Search matches full_name case-insensitively as a substring.
	Search *string
}
