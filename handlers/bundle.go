package handlers

import (
	customerRepoPkg "driveacademy/database/repository/customer"
	staffRepoPkg "driveacademy/database/repository/staff"
)

// HandlerBundle groups all endpoint handlers into one struct. The repos are
// carried so the route registry can hand them to the auth middlewares.
type HandlerBundle struct {
	CustomerRepo customerRepoPkg.CustomerRepository
	StaffRepo    staffRepoPkg.StaffRepository

	Customer   *CustomerHandler
	Staff      *StaffHandler
	Session    *SessionHandler
	Enrollment *EnrollmentHandler
	Payment    *PaymentHandler
	Program    *ProgramHandler
	Material   *MaterialHandler
	Feedback   *FeedbackHandler
	Report     *ReportHandler
}
