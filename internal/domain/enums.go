package domain

import "slices"

// CaseStatus is the lifecycle state of an assistance case.
type CaseStatus string

const (
	CaseStatusNew        CaseStatus = "new"
	CaseStatusInProgress CaseStatus = "in_progress"
	CaseStatusResolved   CaseStatus = "resolved"
	CaseStatusClosed     CaseStatus = "closed"
)

func (s CaseStatus) String() string { return string(s) }

func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusNew, CaseStatusInProgress, CaseStatusResolved, CaseStatusClosed:
		return true
	}
	return false
}

// caseTransitions is only consulted when strict transitions are enabled.
var caseTransitions = map[CaseStatus][]CaseStatus{
	CaseStatusNew:        {CaseStatusInProgress, CaseStatusResolved, CaseStatusClosed},
	CaseStatusInProgress: {CaseStatusNew, CaseStatusResolved, CaseStatusClosed},
	CaseStatusResolved:   {CaseStatusInProgress, CaseStatusClosed},
	CaseStatusClosed:     {CaseStatusInProgress},
}

// CanTransition reports whether the strict transition table allows moving
// from s to next. Staying in the same status is always allowed.
func (s CaseStatus) CanTransition(next CaseStatus) bool {
	if s == next {
		return true
	}
	return slices.Contains(caseTransitions[s], next)
}

// Urgency is the ordinal priority of a case.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyNormal Urgency = "normal"
	UrgencyUrgent Urgency = "urgent"
)

func (u Urgency) String() string { return string(u) }

func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyNormal, UrgencyUrgent:
		return true
	}
	return false
}

// ContactMethod is how the person prefers to be reached.
type ContactMethod string

const (
	ContactMethodCall     ContactMethod = "call"
	ContactMethodSMS      ContactMethod = "sms"
	ContactMethodWhatsApp ContactMethod = "whatsapp"
	ContactMethodVisit    ContactMethod = "visit"
	ContactMethodOther    ContactMethod = "other"
)

func (c ContactMethod) String() string { return string(c) }

func (c ContactMethod) IsValid() bool {
	switch c {
	case ContactMethodCall, ContactMethodSMS, ContactMethodWhatsApp, ContactMethodVisit, ContactMethodOther:
		return true
	}
	return false
}

// ActivityAction tags an entry in the activity ledger.
type ActivityAction string

const (
	ActionCreateCase    ActivityAction = "create_case"
	ActionUpdateCase    ActivityAction = "update_case"
	ActionDeleteCase    ActivityAction = "delete_case"
	ActionLinkAidType   ActivityAction = "link_aid_type"
	ActionLinkAidTypes  ActivityAction = "link_aid_types"
	ActionUnlinkAidType ActivityAction = "unlink_aid_type"
	ActionAddNote       ActivityAction = "add_note"
	ActionDeleteNote    ActivityAction = "delete_note"
	ActionCreatePerson  ActivityAction = "create_person"
	ActionUpdatePerson  ActivityAction = "update_person"
	ActionDeletePerson  ActivityAction = "delete_person"
	ActionCreateAidType ActivityAction = "create_aid_type"
	ActionUpdateAidType ActivityAction = "update_aid_type"
)

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	switch a {
	case ActionCreateCase, ActionUpdateCase, ActionDeleteCase,
		ActionLinkAidType, ActionLinkAidTypes, ActionUnlinkAidType,
		ActionAddNote, ActionDeleteNote,
		ActionCreatePerson, ActionUpdatePerson, ActionDeletePerson,
		ActionCreateAidType, ActionUpdateAidType:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
