package models

import "time"

// Placement represents a recruitment drive posted by the placement cell
type Placement struct {
	ID          int64     `json:"id" db:"id"`
	Company     string    `json:"company" db:"company"`
	Role        string    `json:"role" db:"role"`
	Description string    `json:"description" db:"description"`
	Package     string    `json:"package" db:"package"`
	Eligibility string    `json:"eligibility" db:"eligibility"`
	DriveDate   time.Time `json:"driveDate" db:"drive_date"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
