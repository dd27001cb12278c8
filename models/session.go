package models

import "time"

// Session types.
const (
	SessionPractical = "PRACTICAL"
	SessionTheory    = "THEORY"
	SessionTest      = "TEST"
)

// Session statuses.
const (
	SessionScheduled  = "SCHEDULED"
	SessionInProgress = "IN_PROGRESS"
	SessionCompleted  = "COMPLETED"
	SessionCancelled  = "CANCELLED"
)

// License categories.
const (
	LicenseMotorcycle   = "MOTORCYCLE"
	LicenseLightVehicle = "LIGHT_VEHICLE"
	LicenseHeavyVehicle = "HEAVY_VEHICLE"
)

// Session is a scheduled training, theory or test booking.
type Session struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Type        string    `bson:"type" json:"type"`
	StartTime   time.Time `bson:"startTime" json:"startTime"`
	EndTime     time.Time `bson:"endTime" json:"endTime"`
	Status      string    `bson:"status" json:"status"`
	LicenseType string    `bson:"licenseType" json:"licenseType"`
	Notes       string    `bson:"notes" json:"notes,omitempty"`
	MaxCapacity int       `bson:"maxCapacity" json:"maxCapacity"`
	IsAvailable bool      `bson:"isAvailable" json:"isAvailable"`
	// IDs of customers enrolled in this session.
	EnrolledCustomerIDs []string  `bson:"enrolledCustomerIds" json:"-"`
	CreatedAt           time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasCapacity reports whether the session can take one more enrollment.
func (s Session) HasCapacity() bool {
	return len(s.EnrolledCustomerIDs) < s.MaxCapacity
}

// IsEnrolled reports whether the given customer is enrolled in this session.
func (s Session) IsEnrolled(customerID string) bool {
	for _, id := range s.EnrolledCustomerIDs {
		if id == customerID {
			return true
		}
	}
	return false
}

// SessionCreate is the payload accepted when staff schedule a new session.
type SessionCreate struct {
	Title       string    `json:"title" binding:"required"`
	Type        string    `json:"type" binding:"required"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	LicenseType string    `json:"licenseType" binding:"required"`
	Notes       string    `json:"notes"`
	MaxCapacity int       `json:"maxCapacity" binding:"required,min=1"`
}

// SessionUpdate carries the mutable session fields. Nil fields are left untouched.
type SessionUpdate struct {
	Title       *string    `json:"title"`
	Type        *string    `json:"type"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Status      *string    `json:"status"`
	LicenseType *string    `json:"licenseType"`
	Notes       *string    `json:"notes"`
	MaxCapacity *int       `json:"maxCapacity"`
	IsAvailable *bool      `json:"isAvailable"`
}

// SessionResponse is a session decorated with its enrollment summary.
type SessionResponse struct {
	Session
	CurrentEnrollment int               `json:"currentEnrollment"`
	EnrolledCustomers []CustomerSummary `json:"enrolledCustomers,omitempty"`
}

// CustomerSummary is the subset of customer fields exposed on session listings.
type CustomerSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// EnrollmentResult reports the outcome of a customer enroll/cancel attempt.
// Failed business checks are reported here rather than as transport errors.
type EnrollmentResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
