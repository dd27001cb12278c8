package report

import (
	"testing"
	"time"

	"driveacademy/models"

	"github.com/stretchr/testify/assert"
)

func pay(month time.Month, amount float64, method, status string) models.Payment {
	return models.Payment{
		Amount:      amount,
		PaymentDate: time.Date(2026, month, 10, 12, 0, 0, 0, time.UTC),
		Method:      method,
		Status:      status,
	}
}

func TestRevenueByMonthBucketsAndSorts(t *testing.T) {
	payments := []models.Payment{
		pay(time.March, 10000, models.PaymentCash, models.PaymentCompleted),
		pay(time.January, 5000, models.PaymentCard, models.PaymentCompleted),
		pay(time.March, 2500, models.PaymentCash, models.PaymentCompleted),
		pay(time.February, 9999, models.PaymentCash, models.PaymentRefunded),
	}

	got := revenueByMonth(payments)
	assert.Equal(t, []models.MonthlyRevenue{
		{Month: "2026-01", Revenue: 5000},
		{Month: "2026-03", Revenue: 12500},
	}, got)
}

func TestTotalRevenueCountsOnlyCompleted(t *testing.T) {
	payments := []models.Payment{
		pay(time.January, 5000, models.PaymentCash, models.PaymentCompleted),
		pay(time.January, 3000, models.PaymentCash, models.PaymentPending),
		pay(time.January, 1000, models.PaymentCard, models.PaymentFailed),
		pay(time.February, 2000, models.PaymentCard, models.PaymentCompleted),
	}
	assert.Equal(t, 7000.0, totalRevenue(payments))
}

func TestPaymentsByMethod(t *testing.T) {
	payments := []models.Payment{
		pay(time.January, 5000, models.PaymentCash, models.PaymentCompleted),
		pay(time.January, 3000, models.PaymentCash, models.PaymentCompleted),
		pay(time.January, 2000, models.PaymentCard, models.PaymentCompleted),
		pay(time.January, 9000, models.PaymentBankTransfer, models.PaymentPending),
	}
	got := paymentsByMethod(payments)
	assert.Equal(t, map[string]float64{
		models.PaymentCash: 8000,
		models.PaymentCard: 2000,
	}, got)
}

func TestEnrollmentsByProgramOrdersByPopularity(t *testing.T) {
	enrollments := []models.Enrollment{
		{ProgramID: "a"}, {ProgramID: "b"}, {ProgramID: "b"}, {ProgramID: "c"},
	}
	programs := []models.TrainingProgram{
		{ID: "a", Name: "Motorcycle basics"},
		{ID: "b", Name: "Light vehicle full course"},
	}

	got := enrollmentsByProgram(enrollments, programs)
	assert.Equal(t, []models.ProgramCount{
		{ProgramID: "b", ProgramName: "Light vehicle full course", Count: 2},
		{ProgramID: "a", ProgramName: "Motorcycle basics", Count: 1},
		// Unknown programs keep their count with an empty name.
		{ProgramID: "c", ProgramName: "", Count: 1},
	}, got)
}

func TestSessionCounts(t *testing.T) {
	sessions := []models.Session{
		{Type: models.SessionPractical, Status: models.SessionScheduled},
		{Type: models.SessionPractical, Status: models.SessionCompleted},
		{Type: models.SessionTheory, Status: models.SessionScheduled},
	}

	assert.Equal(t, map[string]int{
		models.SessionPractical: 2,
		models.SessionTheory:    1,
	}, sessionsByType(sessions))

	assert.Equal(t, map[string]int{
		models.SessionScheduled: 2,
		models.SessionCompleted: 1,
	}, sessionsByStatus(sessions))
}

func TestActiveEnrolleesCountsDistinctCustomers(t *testing.T) {
	enrollments := []models.Enrollment{
		{CustomerID: "c1", Status: models.EnrollmentActive},
		{CustomerID: "c1", Status: models.EnrollmentActive},
		{CustomerID: "c2", Status: models.EnrollmentActive},
		{CustomerID: "c3", Status: models.EnrollmentCancelled},
	}
	assert.Equal(t, 2, activeEnrollees(enrollments))
}
