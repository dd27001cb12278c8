package models

import "time"

// Payment methods.
const (
	PaymentCash         = "CASH"
	PaymentCard         = "CARD"
	PaymentBankTransfer = "BANK_TRANSFER"
)

// Payment statuses.
const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
	PaymentRefunded  = "REFUNDED"
)

// Payment is a single installment recorded against an enrollment.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	EnrollmentID  string    `bson:"enrollmentId" json:"enrollmentId"`
	Amount        float64   `bson:"amount" json:"amount"`
	PaymentDate   time.Time `bson:"paymentDate" json:"paymentDate"`
	Method        string    `bson:"method" json:"paymentMethod"`
	Status        string    `bson:"status" json:"status"`
	Description   string    `bson:"description" json:"description,omitempty"`
	ReceiptNumber string    `bson:"receiptNumber" json:"receiptNumber"`
}

// ValidPaymentMethod reports whether method is one of the accepted methods.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentCard, PaymentBankTransfer:
		return true
	}
	return false
}

// PaymentCreate is the payload accepted when staff record a payment.
type PaymentCreate struct {
	EnrollmentID string  `json:"enrollmentId" binding:"required"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Method       string  `json:"paymentMethod" binding:"required"`
	Description  string  `json:"description"`
}

// PaymentUpdate carries the mutable payment fields. Nil fields are left untouched.
type PaymentUpdate struct {
	Status      *string `json:"status"`
	Method      *string `json:"paymentMethod"`
	Description *string `json:"description"`
}

// PaymentResponse is a payment joined with its enrollment, customer and program
// details plus the running balance for the enrollment.
type PaymentResponse struct {
	Payment
	CustomerID        string  `json:"customerId"`
	CustomerName      string  `json:"customerName"`
	CustomerEmail     string  `json:"customerEmail"`
	ProgramID         string  `json:"programId"`
	ProgramName       string  `json:"programName"`
	TotalProgramPrice float64 `json:"totalProgramPrice"`
	TotalPaid         float64 `json:"totalPaid"`
	RemainingAmount   float64 `json:"remainingAmount"`
}
