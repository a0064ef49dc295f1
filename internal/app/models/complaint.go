package models

import "time"

// ComplaintStatus represents the lifecycle state of a complaint
type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "Pending"
	ComplaintStatusInProgress ComplaintStatus = "In-Progress"
	ComplaintStatusResolved   ComplaintStatus = "Resolved"
	ComplaintStatusClosed     ComplaintStatus = "Closed"
	ComplaintStatusEscalated  ComplaintStatus = "Escalated"
)

var validComplaintStatuses = map[ComplaintStatus]bool{
	ComplaintStatusPending:    true,
	ComplaintStatusInProgress: true,
	ComplaintStatusResolved:   true,
	ComplaintStatusClosed:     true,
	ComplaintStatusEscalated:  true,
}

// String returns the status as a string
func (s ComplaintStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is a known lifecycle state
func (s ComplaintStatus) IsValid() bool {
	return validComplaintStatuses[s]
}

// IsTerminal reports whether the status admits no further transitions
func (s ComplaintStatus) IsTerminal() bool {
	return s == ComplaintStatusClosed
}

// ResolveStatus decides the status a complaint ends up in after an update.
// Assigning a faculty member to a complaint that is still Pending promotes it
// to In-Progress no matter what status the request also carried; otherwise a
// requested status applies verbatim and an absent one preserves the current
// status. The conditional UPDATE in the complaint repository executes this
// same rule server-side in a single statement; this function is the reference
// form of the rule.
func ResolveStatus(current ComplaintStatus, requested *ComplaintStatus, assigning bool) ComplaintStatus {
	if assigning && current == ComplaintStatusPending {
		return ComplaintStatusInProgress
	}
	if requested != nil {
		return *requested
	}
	return current
}

// ComplaintPriority represents the urgency of a complaint
type ComplaintPriority string

const (
	PriorityLow      ComplaintPriority = "Low"
	PriorityMedium   ComplaintPriority = "Medium"
	PriorityHigh     ComplaintPriority = "High"
	PriorityCritical ComplaintPriority = "Critical"
)

var validComplaintPriorities = map[ComplaintPriority]bool{
	PriorityLow:      true,
	PriorityMedium:   true,
	PriorityHigh:     true,
	PriorityCritical: true,
}

// IsValid reports whether the priority is a known level
func (p ComplaintPriority) IsValid() bool {
	return validComplaintPriorities[p]
}

// Complaint represents a student grievance moving through the resolution
// lifecycle. ComplaintID is the human-facing reference code; ID stays the
// authoritative identity. Complaints are never physically deleted.
type Complaint struct {
	ID            int64             `json:"id" db:"id"`
	ComplaintID   string            `json:"complaintId" db:"complaint_id"`
	UserID        int64             `json:"userId" db:"user_id"`
	Category      string            `json:"category" db:"category"`
	SubCategory   string            `json:"subCategory" db:"sub_category"`
	Subject       string            `json:"subject" db:"subject"`
	Description   string            `json:"description" db:"description"`
	FilePath      *string           `json:"filePath,omitempty" db:"file_path"`
	Status        ComplaintStatus   `json:"status" db:"status"`
	Priority      ComplaintPriority `json:"priority" db:"priority"`
	AssignedTo    *int64            `json:"assignedTo,omitempty" db:"assigned_to"`
	InternalNotes *string           `json:"internalNotes,omitempty" db:"internal_notes"`
	FacultyReply  *string           `json:"facultyReply,omitempty" db:"faculty_reply"`
	CreatedAt     time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time         `json:"updatedAt" db:"updated_at"`

	// Related entities
	Assignee *User `json:"assignee,omitempty"`
}

// ComplaintUpdate carries the partial update for a complaint. Each nil field
// means "preserve the stored value"; there is no explicit-null-to-clear.
type ComplaintUpdate struct {
	Status        *ComplaintStatus
	Priority      *ComplaintPriority
	AssignedTo    *int64
	InternalNotes *string
	FacultyReply  *string
}

// IsEmpty reports whether the update carries no fields at all
func (u ComplaintUpdate) IsEmpty() bool {
	return u.Status == nil && u.Priority == nil && u.AssignedTo == nil &&
		u.InternalNotes == nil && u.FacultyReply == nil
}
