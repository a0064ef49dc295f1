package models

import "time"

// PollStatus represents whether a poll accepts votes
type PollStatus string

const (
	PollStatusActive PollStatus = "active"
	PollStatusClosed PollStatus = "closed"
)

// IsValid reports whether the status is a known poll state
func (s PollStatus) IsValid() bool {
	return s == PollStatusActive || s == PollStatusClosed
}

// Poll represents a campus opinion poll. Options (and transitively votes) are
// owned rows: creation inserts them in the poll's transaction and deletion
// removes them through the schema's cascade.
type Poll struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Category    string     `json:"category" db:"category"`
	Deadline    time.Time  `json:"deadline" db:"deadline"`
	Status      PollStatus `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`

	// Related entities
	Options []*PollOption `json:"options,omitempty"`
}

// PollOption is a single choice within a poll
type PollOption struct {
	ID         int64  `json:"id" db:"id"`
	PollID     int64  `json:"pollId" db:"poll_id"`
	OptionText string `json:"optionText" db:"option_text"`
	VotesCount int    `json:"votesCount" db:"votes_count"`
}

// PollVote records that a user voted for an option; one vote per user per poll
type PollVote struct {
	ID       int64     `json:"id" db:"id"`
	PollID   int64     `json:"pollId" db:"poll_id"`
	OptionID int64     `json:"optionId" db:"option_id"`
	UserID   int64     `json:"userId" db:"user_id"`
	VotedAt  time.Time `json:"votedAt" db:"voted_at"`
}
