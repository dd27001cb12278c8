package payment

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"driveacademy/models"
	"driveacademy/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentRepo struct {
	payments map[string]*models.Payment
}

func (r *fakePaymentRepo) GetByID(id string) (*models.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "payment"}
	}
	dup := *p
	return &dup, nil
}

func (r *fakePaymentRepo) GetAll() ([]models.Payment, error) {
	out := make([]models.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePaymentRepo) GetByEnrollment(enrollmentID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if p.EnrollmentID == enrollmentID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) GetByEnrollments(enrollmentIDs []string) ([]models.Payment, error) {
	var out []models.Payment
	for _, id := range enrollmentIDs {
		batch, _ := r.GetByEnrollment(id)
		out = append(out, batch...)
	}
	return out, nil
}

func (r *fakePaymentRepo) GetBetween(from, to time.Time) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if !p.PaymentDate.Before(from) && p.PaymentDate.Before(to) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) TotalPaidByEnrollment(enrollmentID string) (float64, error) {
	var total float64
	for _, p := range r.payments {
		if p.EnrollmentID == enrollmentID && p.Status == models.PaymentCompleted {
			total += p.Amount
		}
	}
	return total, nil
}

func (r *fakePaymentRepo) Count() (int64, error) {
	return int64(len(r.payments)), nil
}

func (r *fakePaymentRepo) Create(payment *models.Payment) error {
	dup := *payment
	r.payments[payment.ID] = &dup
	return nil
}

func (r *fakePaymentRepo) UpdateFields(id string, fields map[string]any) error {
	p, ok := r.payments[id]
	if !ok {
		return utils.NotFoundError{Resource: "payment"}
	}
	for k, v := range fields {
		switch k {
		case "status":
			p.Status = v.(string)
		case "method":
			p.Method = v.(string)
		case "description":
			p.Description = v.(string)
		}
	}
	return nil
}

func (r *fakePaymentRepo) Delete(id string) error {
	if _, ok := r.payments[id]; !ok {
		return utils.NotFoundError{Resource: "payment"}
	}
	delete(r.payments, id)
	return nil
}

type fakeEnrollmentRepo struct {
	enrollments map[string]*models.Enrollment
}

func (r *fakeEnrollmentRepo) GetByID(id string) (*models.Enrollment, error) {
	e, ok := r.enrollments[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "enrollment"}
	}
	dup := *e
	return &dup, nil
}

func (r *fakeEnrollmentRepo) GetAll() ([]models.Enrollment, error) {
	out := make([]models.Enrollment, 0, len(r.enrollments))
	for _, e := range r.enrollments {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) GetByCustomer(customerID string) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range r.enrollments {
		if e.CustomerID == customerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) GetByProgram(programID string) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range r.enrollments {
		if e.ProgramID == programID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) Create(enrollment *models.Enrollment) error {
	dup := *enrollment
	r.enrollments[enrollment.ID] = &dup
	return nil
}

func (r *fakeEnrollmentRepo) UpdateFields(id string, fields map[string]any) error {
	e, ok := r.enrollments[id]
	if !ok {
		return utils.NotFoundError{Resource: "enrollment"}
	}
	if paid, ok := fields["isPaid"]; ok {
		e.IsPaid = paid.(bool)
	}
	return nil
}

func (r *fakeEnrollmentRepo) Delete(id string) error {
	delete(r.enrollments, id)
	return nil
}

type fakeCustomerRepo struct{}

func (fakeCustomerRepo) GetByID(id string) (*models.Customer, error) {
	return &models.Customer{ID: id, FirstName: "Amal", LastName: "Perera", Email: "amal@example.com"}, nil
}
func (fakeCustomerRepo) GetByEmail(string) (*models.Customer, error) {
	return nil, utils.NotFoundError{Resource: "customer"}
}
func (fakeCustomerRepo) GetAll() ([]models.Customer, error)           { return nil, nil }
func (fakeCustomerRepo) GetByIDs([]string) ([]models.Customer, error) { return nil, nil }
func (fakeCustomerRepo) Create(*models.Customer) error                { return nil }
func (fakeCustomerRepo) UpdateFields(string, map[string]any) error    { return nil }
func (fakeCustomerRepo) Delete(string) error                          { return nil }
func (fakeCustomerRepo) CountRegisteredBetween(time.Time, time.Time) (int64, error) {
	return 0, nil
}

type fakeProgramRepo struct {
	programs map[string]*models.TrainingProgram
}

func (r *fakeProgramRepo) GetByID(id string) (*models.TrainingProgram, error) {
	p, ok := r.programs[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "program"}
	}
	dup := *p
	return &dup, nil
}

func (r *fakeProgramRepo) GetAll() ([]models.TrainingProgram, error) {
	out := make([]models.TrainingProgram, 0, len(r.programs))
	for _, p := range r.programs {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProgramRepo) Create(program *models.TrainingProgram) error {
	dup := *program
	r.programs[program.ID] = &dup
	return nil
}

func (r *fakeProgramRepo) UpdateFields(string, map[string]any) error { return nil }
func (r *fakeProgramRepo) Delete(string) error                       { return nil }

func newTestPaymentService(programPrice int) (*DefaultPaymentService, *fakeEnrollmentRepo) {
	enrRepo := &fakeEnrollmentRepo{enrollments: map[string]*models.Enrollment{
		"enr-1": {ID: "enr-1", CustomerID: "cust-1", ProgramID: "prog-1", Status: models.EnrollmentActive},
	}}
	return &DefaultPaymentService{
		Repo:           &fakePaymentRepo{payments: map[string]*models.Payment{}},
		EnrollmentRepo: enrRepo,
		CustomerRepo:   fakeCustomerRepo{},
		ProgramRepo: &fakeProgramRepo{programs: map[string]*models.TrainingProgram{
			"prog-1": {ID: "prog-1", Name: "Light vehicle full course", Price: programPrice},
		}},
	}, enrRepo
}

func TestRecordPaymentGeneratesReceiptNumber(t *testing.T) {
	svc, _ := newTestPaymentService(50000)

	resp, err := svc.RecordPayment(models.PaymentCreate{
		EnrollmentID: "enr-1",
		Amount:       10000,
		Method:       models.PaymentCash,
	})
	require.NoError(t, err)

	expected := fmt.Sprintf("REC-%s-00001", time.Now().Format("20060102"))
	assert.Equal(t, expected, resp.ReceiptNumber)
	assert.Equal(t, models.PaymentCompleted, resp.Status)
	assert.Equal(t, 10000.0, resp.TotalPaid)
	assert.Equal(t, 40000.0, resp.RemainingAmount)

	// The next receipt continues the sequence.
	resp, err = svc.RecordPayment(models.PaymentCreate{
		EnrollmentID: "enr-1",
		Amount:       5000,
		Method:       models.PaymentCard,
	})
	require.NoError(t, err)
	expected = fmt.Sprintf("REC-%s-00002", time.Now().Format("20060102"))
	assert.Equal(t, expected, resp.ReceiptNumber)
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	svc, _ := newTestPaymentService(50000)

	_, err := svc.RecordPayment(models.PaymentCreate{
		EnrollmentID: "enr-1",
		Amount:       30000,
		Method:       models.PaymentCash,
	})
	require.NoError(t, err)

	// 30000 paid of 50000: another 25000 would overshoot.
	_, err = svc.RecordPayment(models.PaymentCreate{
		EnrollmentID: "enr-1",
		Amount:       25000,
		Method:       models.PaymentCash,
	})
	var ve utils.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Message, "exceeds the remaining balance")
}

func TestRecordPaymentMarksEnrollmentPaidAtFullPrice(t *testing.T) {
	svc, enrRepo := newTestPaymentService(50000)

	_, err := svc.RecordPayment(models.PaymentCreate{
		EnrollmentID: "enr-1",
		Amount:       30000,
		Method:       models.PaymentBankTransfer,
	})
	require.NoError(t, err)
	enr, _ := enrRepo.GetByID("enr-1")
	assert.False(t, enr.IsPaid)

	_, err = svc.RecordPayment(models.PaymentCreate{
		EnrollmentID: "enr-1",
		Amount:       20000,
		Method:       models.PaymentCash,
	})
	require.NoError(t, err)
	enr, _ = enrRepo.GetByID("enr-1")
	assert.True(t, enr.IsPaid)
}

func TestRecordPaymentRejectsUnknownMethod(t *testing.T) {
	svc, _ := newTestPaymentService(50000)

	_, err := svc.RecordPayment(models.PaymentCreate{
		EnrollmentID: "enr-1",
		Amount:       1000,
		Method:       "BARTER",
	})
	var ve utils.ValidationError
	require.True(t, errors.As(err, &ve))
}

func TestUpdatePaymentRefundClearsPaidFlag(t *testing.T) {
	svc, enrRepo := newTestPaymentService(10000)

	resp, err := svc.RecordPayment(models.PaymentCreate{
		EnrollmentID: "enr-1",
		Amount:       10000,
		Method:       models.PaymentCash,
	})
	require.NoError(t, err)
	enr, _ := enrRepo.GetByID("enr-1")
	require.True(t, enr.IsPaid)

	refunded := models.PaymentRefunded
	_, err = svc.UpdatePayment(resp.ID, models.PaymentUpdate{Status: &refunded})
	require.NoError(t, err)

	enr, _ = enrRepo.GetByID("enr-1")
	assert.False(t, enr.IsPaid)
}
