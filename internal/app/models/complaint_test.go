package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStatus(t *testing.T) {
	resolved := ComplaintStatusResolved

	tests := []struct {
		name      string
		current   ComplaintStatus
		requested *ComplaintStatus
		assigning bool
		want      ComplaintStatus
	}{
		{
			name:      "assigning a pending complaint promotes to in-progress",
			current:   ComplaintStatusPending,
			requested: nil,
			assigning: true,
			want:      ComplaintStatusInProgress,
		},
		{
			name:      "promotion wins over an explicit status in the same request",
			current:   ComplaintStatusPending,
			requested: &resolved,
			assigning: true,
			want:      ComplaintStatusInProgress,
		},
		{
			name:      "assigning a non-pending complaint applies the requested status verbatim",
			current:   ComplaintStatusInProgress,
			requested: &resolved,
			assigning: true,
			want:      ComplaintStatusResolved,
		},
		{
			name:      "requested status applies without assignment",
			current:   ComplaintStatusInProgress,
			requested: &resolved,
			assigning: false,
			want:      ComplaintStatusResolved,
		},
		{
			name:      "absent status preserves the current one",
			current:   ComplaintStatusEscalated,
			requested: nil,
			assigning: false,
			want:      ComplaintStatusEscalated,
		},
		{
			name:      "reassigning an already in-progress complaint changes nothing",
			current:   ComplaintStatusInProgress,
			requested: nil,
			assigning: true,
			want:      ComplaintStatusInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveStatus(tt.current, tt.requested, tt.assigning)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComplaintStatusIsValid(t *testing.T) {
	for _, s := range []ComplaintStatus{
		ComplaintStatusPending,
		ComplaintStatusInProgress,
		ComplaintStatusResolved,
		ComplaintStatusClosed,
		ComplaintStatusEscalated,
	} {
		assert.True(t, s.IsValid(), "status %q should be valid", s)
	}

	assert.False(t, ComplaintStatus("Open").IsValid())
	assert.False(t, ComplaintStatus("").IsValid())
	assert.False(t, ComplaintStatus("pending").IsValid(), "status values are case sensitive")
}

func TestComplaintStatusIsTerminal(t *testing.T) {
	assert.True(t, ComplaintStatusClosed.IsTerminal())
	assert.False(t, ComplaintStatusEscalated.IsTerminal())
	assert.False(t, ComplaintStatusResolved.IsTerminal())
}

func TestComplaintPriorityIsValid(t *testing.T) {
	assert.True(t, PriorityMedium.IsValid())
	assert.True(t, PriorityCritical.IsValid())
	assert.False(t, ComplaintPriority("Urgent").IsValid())
}

func TestComplaintUpdateIsEmpty(t *testing.T) {
	assert.True(t, ComplaintUpdate{}.IsEmpty())

	notes := "checked with hostel warden"
	assert.False(t, ComplaintUpdate{InternalNotes: &notes}.IsEmpty())

	assignee := int64(7)
	assert.False(t, ComplaintUpdate{AssignedTo: &assignee}.IsEmpty())
}
