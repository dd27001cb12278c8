package models

import "time"

// Enrollment statuses.
const (
	EnrollmentPending   = "PENDING"
	EnrollmentActive    = "ACTIVE"
	EnrollmentCompleted = "COMPLETED"
	EnrollmentCancelled = "CANCELLED"
)

// Enrollment ties a customer to a training program.
type Enrollment struct {
	ID             string    `bson:"id" json:"id"`
	CustomerID     string    `bson:"customerId" json:"customerId"`
	ProgramID      string    `bson:"programId" json:"programId"`
	Status         string    `bson:"status" json:"status"`
	EnrollmentDate time.Time `bson:"enrollmentDate" json:"enrollmentDate"`
	StartDate      time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	CompletionDate time.Time `bson:"completionDate,omitempty" json:"completionDate,omitempty"`
	Notes          string    `bson:"notes" json:"notes,omitempty"`
	IsPaid         bool      `bson:"isPaid" json:"isPaid"`
}

// ValidEnrollmentStatus reports whether status is one of the known statuses.
func ValidEnrollmentStatus(status string) bool {
	switch status {
	case EnrollmentPending, EnrollmentActive, EnrollmentCompleted, EnrollmentCancelled:
		return true
	}
	return false
}

// EnrollmentCreate is the payload accepted when staff enroll a customer in a program.
type EnrollmentCreate struct {
	CustomerID string    `json:"customerId" binding:"required"`
	ProgramID  string    `json:"programId" binding:"required"`
	StartDate  time.Time `json:"startDate"`
	Notes      string    `json:"notes"`
	IsPaid     bool      `json:"isPaid"`
}

// EnrollmentUpdate carries the mutable enrollment fields. Nil fields are left untouched.
type EnrollmentUpdate struct {
	Status         *string    `json:"status"`
	StartDate      *time.Time `json:"startDate"`
	CompletionDate *time.Time `json:"completionDate"`
	Notes          *string    `json:"notes"`
	IsPaid         *bool      `json:"isPaid"`
}

// EnrollmentResponse is an enrollment joined with customer and program details.
type EnrollmentResponse struct {
	Enrollment
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	ProgramName   string `json:"programName"`
	ProgramPrice  int    `json:"programPrice"`
}
