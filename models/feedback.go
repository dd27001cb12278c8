package models

import "time"

// Feedback ratings.
const (
	RatingPoor      = "POOR"
	RatingFair      = "FAIR"
	RatingGood      = "GOOD"
	RatingVeryGood  = "VERY_GOOD"
	RatingExcellent = "EXCELLENT"
)

// Feedback is an instructor's review of a customer's performance in a session.
type Feedback struct {
	ID           string    `bson:"id" json:"id"`
	SessionID    string    `bson:"sessionId" json:"sessionId"`
	CustomerID   string    `bson:"customerId" json:"customerId"`
	InstructorID string    `bson:"instructorId" json:"instructorId"`
	Comment      string    `bson:"comment" json:"comment"`
	Rating       string    `bson:"rating" json:"rating"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// ValidRating reports whether rating is one of the known ratings.
func ValidRating(rating string) bool {
	switch rating {
	case RatingPoor, RatingFair, RatingGood, RatingVeryGood, RatingExcellent:
		return true
	}
	return false
}

// FeedbackCreate is the payload accepted when an instructor files feedback.
type FeedbackCreate struct {
	SessionID  string `json:"sessionId" binding:"required"`
	CustomerID string `json:"customerId" binding:"required"`
	Comment    string `json:"comment" binding:"required,min=10,max=2000"`
	Rating     string `json:"rating" binding:"required"`
}

// FeedbackUpdate carries the mutable feedback fields. Nil fields are left untouched.
type FeedbackUpdate struct {
	Comment *string `json:"comment"`
	Rating  *string `json:"rating"`
}

// FeedbackResponse is feedback joined with customer and session details.
type FeedbackResponse struct {
	Feedback
	CustomerName   string    `json:"customerName"`
	InstructorName string    `json:"instructorName"`
	SessionTitle   string    `json:"sessionTitle"`
	SessionStart   time.Time `json:"sessionStart"`
}
