package payment

import (
	"fmt"
	"time"

	"driveacademy/models"
	"driveacademy/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetAllPayments returns every payment with its joined details.
func (s *DefaultPaymentService) GetAllPayments() ([]models.PaymentResponse, error) {
	payments, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.toResponses(payments)
}

// GetPaymentByID returns a single payment with its joined details.
func (s *DefaultPaymentService) GetPaymentByID(id string) (*models.PaymentResponse, error) {
	payment, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(*payment)
}

// GetEnrollmentPayments returns the payments recorded against an enrollment.
func (s *DefaultPaymentService) GetEnrollmentPayments(enrollmentID string) ([]models.PaymentResponse, error) {
	payments, err := s.Repo.GetByEnrollment(enrollmentID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(payments)
}

// GetCustomerPayments returns the payments across all of a customer's enrollments.
func (s *DefaultPaymentService) GetCustomerPayments(customerID string) ([]models.PaymentResponse, error) {
	enrollments, err := s.EnrollmentRepo.GetByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	if len(enrollments) == 0 {
		return []models.PaymentResponse{}, nil
	}

	ids := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		ids = append(ids, e.ID)
	}
	payments, err := s.Repo.GetByEnrollments(ids)
	if err != nil {
		return nil, err
	}
	return s.toResponses(payments)
}

// RecordPayment records a manual installment against an enrollment. A payment
// that would push the enrollment past the program price is rejected, and an
// enrollment whose completed total reaches the price is marked paid.
func (s *DefaultPaymentService) RecordPayment(req models.PaymentCreate) (*models.PaymentResponse, error) {
	logger := utils.GetLogger()

	if !models.ValidPaymentMethod(req.Method) {
		return nil, utils.ValidationError{Message: fmt.Sprintf("unknown payment method %q", req.Method)}
	}

	enrollment, err := s.EnrollmentRepo.GetByID(req.EnrollmentID)
	if err != nil {
		return nil, err
	}
	program, err := s.ProgramRepo.GetByID(enrollment.ProgramID)
	if err != nil {
		return nil, err
	}

	paid, err := s.Repo.TotalPaidByEnrollment(enrollment.ID)
	if err != nil {
		return nil, err
	}
	price := float64(program.Price)
	if paid+req.Amount > price {
		return nil, utils.ValidationError{
			Message: fmt.Sprintf("payment of %.2f exceeds the remaining balance of %.2f", req.Amount, price-paid),
		}
	}

	receipt, err := s.nextReceiptNumber()
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ID:            uuid.New().String(),
		EnrollmentID:  enrollment.ID,
		Amount:        req.Amount,
		PaymentDate:   time.Now(),
		Method:        req.Method,
		Status:        models.PaymentCompleted,
		Description:   req.Description,
		ReceiptNumber: receipt,
	}

	if err := s.Repo.Create(payment); err != nil {
		logger.Error("Failed to record payment", zap.Error(err))
		return nil, err
	}

	if paid+req.Amount >= price && !enrollment.IsPaid {
		if err := s.EnrollmentRepo.UpdateFields(enrollment.ID, map[string]any{"isPaid": true}); err != nil {
			logger.Error("Failed to mark enrollment as paid",
				zap.String("enrollmentID", enrollment.ID), zap.Error(err))
			return nil, err
		}
	}

	logger.Info("Payment recorded",
		zap.String("paymentID", payment.ID),
		zap.String("receipt", payment.ReceiptNumber),
		zap.Float64("amount", payment.Amount))

	return s.toResponse(*payment)
}

// UpdatePayment applies a partial update. When a completed payment is moved to
// FAILED or REFUNDED the enrollment's paid flag is recomputed.
func (s *DefaultPaymentService) UpdatePayment(id string, req models.PaymentUpdate) (*models.PaymentResponse, error) {
	payment, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Status != nil {
		switch *req.Status {
		case models.PaymentPending, models.PaymentCompleted, models.PaymentFailed, models.PaymentRefunded:
		default:
			return nil, utils.ValidationError{Message: fmt.Sprintf("unknown payment status %q", *req.Status)}
		}
		fields["status"] = *req.Status
	}
	if req.Method != nil {
		if !models.ValidPaymentMethod(*req.Method) {
			return nil, utils.ValidationError{Message: fmt.Sprintf("unknown payment method %q", *req.Method)}
		}
		fields["method"] = *req.Method
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}

	if req.Status != nil && *req.Status != payment.Status {
		if err := s.recomputePaidFlag(payment.EnrollmentID); err != nil {
			return nil, err
		}
	}

	return s.GetPaymentByID(id)
}

// DeletePayment removes a payment record and recomputes the enrollment's paid flag.
func (s *DefaultPaymentService) DeletePayment(id string) error {
	payment, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	return s.recomputePaidFlag(payment.EnrollmentID)
}

// nextReceiptNumber produces a receipt like REC-20260830-00042 from the
// running payment count.
func (s *DefaultPaymentService) nextReceiptNumber() (string, error) {
	count, err := s.Repo.Count()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("REC-%s-%05d", time.Now().Format("20060102"), count+1), nil
}

func (s *DefaultPaymentService) recomputePaidFlag(enrollmentID string) error {
	enrollment, err := s.EnrollmentRepo.GetByID(enrollmentID)
	if err != nil {
		return err
	}
	program, err := s.ProgramRepo.GetByID(enrollment.ProgramID)
	if err != nil {
		return err
	}
	paid, err := s.Repo.TotalPaidByEnrollment(enrollmentID)
	if err != nil {
		return err
	}

	isPaid := paid >= float64(program.Price)
	if isPaid != enrollment.IsPaid {
		return s.EnrollmentRepo.UpdateFields(enrollmentID, map[string]any{"isPaid": isPaid})
	}
	return nil
}

func (s *DefaultPaymentService) toResponses(payments []models.Payment) ([]models.PaymentResponse, error) {
	responses := make([]models.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp, err := s.toResponse(p)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *DefaultPaymentService) toResponse(payment models.Payment) (*models.PaymentResponse, error) {
	resp := models.PaymentResponse{Payment: payment}

	enrollment, err := s.EnrollmentRepo.GetByID(payment.EnrollmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load enrollment for payment %s: %w", payment.ID, err)
	}
	resp.CustomerID = enrollment.CustomerID
	resp.ProgramID = enrollment.ProgramID

	cust, err := s.CustomerRepo.GetByID(enrollment.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer for payment %s: %w", payment.ID, err)
	}
	resp.CustomerName = cust.FullName()
	resp.CustomerEmail = cust.Email

	program, err := s.ProgramRepo.GetByID(enrollment.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("failed to load program for payment %s: %w", payment.ID, err)
	}
	resp.ProgramName = program.Name
	resp.TotalProgramPrice = float64(program.Price)

	paid, err := s.Repo.TotalPaidByEnrollment(enrollment.ID)
	if err != nil {
		return nil, err
	}
	resp.TotalPaid = paid
	resp.RemainingAmount = resp.TotalProgramPrice - paid

	return &resp, nil
}
