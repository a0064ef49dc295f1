package dto

import (
	"time"

	"github.com/campushub/campushub/internal/app/models"
)

// CreateComplaintRequest carries a new student grievance. The attachment, if
// any, arrives as multipart form data alongside these fields.
type CreateComplaintRequest struct {
	Category    string `form:"category" json:"category" binding:"required" example:"Hostel"`
	SubCategory string `form:"subCategory" json:"subCategory" binding:"required" example:"WiFi"`
	Subject     string `form:"subject" json:"subject" binding:"required" example:"No connectivity"`
	Description string `form:"description" json:"description" binding:"required" example:"No WiFi in block C since Monday"`
}

// CreateComplaintResponse returns the reference code and the fixed initial status
type CreateComplaintResponse struct {
	ComplaintID string `json:"complaintId" example:"CMP48291307"`
	Status      string `json:"status" example:"Pending"`
}

// UpdateComplaintRequest is the partial update payload. Absent fields are
// preserved; there is no way to clear a field by sending null.
type UpdateComplaintRequest struct {
	Status        *string `json:"status,omitempty" example:"Resolved"`
	Priority      *string `json:"priority,omitempty" example:"High"`
	AssignedTo    *int64  `json:"assigned_to,omitempty" example:"7"`
	InternalNotes *string `json:"internal_notes,omitempty" example:"Escalated to network team"`
	FacultyReply  *string `json:"faculty_reply,omitempty" example:"The access point has been replaced"`
}

// AssignComplaintRequest links a complaint to a faculty principal
type AssignComplaintRequest struct {
	FacultyID int64 `json:"facultyId" binding:"required" example:"7"`
}

// ComplaintResponse is the read shape of a complaint
type ComplaintResponse struct {
	ID            int64      `json:"id" example:"42"`
	ComplaintID   string     `json:"complaintId" example:"CMP48291307"`
	Category      string     `json:"category" example:"Hostel"`
	SubCategory   string     `json:"subCategory" example:"WiFi"`
	Subject       string     `json:"subject" example:"No connectivity"`
	Description   string     `json:"description"`
	FileURL       *string    `json:"fileUrl,omitempty"`
	Status        string     `json:"status" example:"In-Progress"`
	Priority      string     `json:"priority" example:"Medium"`
	AssignedTo    *int64     `json:"assignedTo,omitempty" example:"7"`
	InternalNotes *string    `json:"internalNotes,omitempty"`
	FacultyReply  *string    `json:"facultyReply,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	Assignee      *UserBrief `json:"assignee,omitempty"`
}

// ComplaintListResponse is one page of complaints
type ComplaintListResponse struct {
	Complaints     []ComplaintResponse `json:"complaints"`
	PaginationInfo PaginationInfo      `json:"pagination"`
}

// NewComplaintResponse maps a model onto the read shape
func NewComplaintResponse(c *models.Complaint, fileURL *string) ComplaintResponse {
	resp := ComplaintResponse{
		ID:            c.ID,
		ComplaintID:   c.ComplaintID,
		Category:      c.Category,
		SubCategory:   c.SubCategory,
		Subject:       c.Subject,
		Description:   c.Description,
		FileURL:       fileURL,
		Status:        c.Status.String(),
		Priority:      string(c.Priority),
		AssignedTo:    c.AssignedTo,
		InternalNotes: c.InternalNotes,
		FacultyReply:  c.FacultyReply,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if c.Assignee != nil {
		resp.Assignee = &UserBrief{
			ID:    c.Assignee.ID,
			Name:  c.Assignee.Name,
			Email: c.Assignee.Email,
		}
	}
	return resp
}
