package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campushub/internal/app/models"
)

func TestComplaintUpdateArgs(t *testing.T) {
	status := models.ComplaintStatusResolved
	priority := models.PriorityHigh
	assignee := int64(7)
	notes := "escalated to warden"

	tests := []struct {
		name string
		upd  models.ComplaintUpdate
		want []any
	}{
		{
			name: "all fields absent preserves everything",
			upd:  models.ComplaintUpdate{},
			want: []any{(*int64)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), int64(42)},
		},
		{
			name: "assignment only",
			upd:  models.ComplaintUpdate{AssignedTo: &assignee},
			want: []any{&assignee, (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), int64(42)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := complaintUpdateArgs(42, tt.upd)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("enum fields are converted to plain strings", func(t *testing.T) {
		got := complaintUpdateArgs(42, models.ComplaintUpdate{
			Status:        &status,
			Priority:      &priority,
			InternalNotes: &notes,
		})
		require.Len(t, got, 6)

		gotStatus, ok := got[1].(*string)
		require.True(t, ok)
		assert.Equal(t, "Resolved", *gotStatus)

		gotPriority, ok := got[2].(*string)
		require.True(t, ok)
		assert.Equal(t, "High", *gotPriority)

		assert.Equal(t, &notes, got[3])
		assert.Equal(t, int64(42), got[5])
	})
}

// The promotion rule must live inside the statement itself, not in Go code
// wrapped around it, so a concurrent status change cannot be overwritten
// between a read and a write.
func TestComplaintUpdateSQLShape(t *testing.T) {
	assert.Contains(t, complaintUpdateSQL, "CASE")
	assert.Contains(t, complaintUpdateSQL, "status = 'Pending' THEN 'In-Progress'")
	assert.Contains(t, complaintUpdateSQL, "COALESCE($2::text, status)")
	assert.Contains(t, complaintUpdateSQL, "assigned_to = COALESCE($1::bigint, assigned_to)")
	assert.Contains(t, complaintUpdateSQL, "internal_notes = COALESCE($4::text, internal_notes)")
}
