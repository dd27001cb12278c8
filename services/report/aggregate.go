package report

import (
	"sort"

	"driveacademy/models"
)

// revenueByMonth buckets completed payments into calendar months, sorted
// chronologically.
func revenueByMonth(payments []models.Payment) []models.MonthlyRevenue {
	buckets := map[string]float64{}
	for _, p := range payments {
		if p.Status != models.PaymentCompleted {
			continue
		}
		buckets[p.PaymentDate.Format("2006-01")] += p.Amount
	}

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]models.MonthlyRevenue, 0, len(months))
	for _, m := range months {
		out = append(out, models.MonthlyRevenue{Month: m, Revenue: buckets[m]})
	}
	return out
}

// totalRevenue sums completed payments.
func totalRevenue(payments []models.Payment) float64 {
	var total float64
	for _, p := range payments {
		if p.Status == models.PaymentCompleted {
			total += p.Amount
		}
	}
	return total
}

// paymentsByMethod sums completed payments per payment method.
func paymentsByMethod(payments []models.Payment) map[string]float64 {
	out := map[string]float64{}
	for _, p := range payments {
		if p.Status == models.PaymentCompleted {
			out[p.Method] += p.Amount
		}
	}
	return out
}

// enrollmentsByProgram counts enrollments per program, most popular first.
// Program names are resolved from the given catalog.
func enrollmentsByProgram(enrollments []models.Enrollment, programs []models.TrainingProgram) []models.ProgramCount {
	names := make(map[string]string, len(programs))
	for _, p := range programs {
		names[p.ID] = p.Name
	}

	counts := map[string]int{}
	for _, e := range enrollments {
		counts[e.ProgramID]++
	}

	out := make([]models.ProgramCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, models.ProgramCount{ProgramID: id, ProgramName: names[id], Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ProgramID < out[j].ProgramID
	})
	return out
}

// sessionsByType counts sessions per session type.
func sessionsByType(sessions []models.Session) map[string]int {
	out := map[string]int{}
	for _, s := range sessions {
		out[s.Type]++
	}
	return out
}

// sessionsByStatus counts sessions per status.
func sessionsByStatus(sessions []models.Session) map[string]int {
	out := map[string]int{}
	for _, s := range sessions {
		out[s.Status]++
	}
	return out
}

// activeEnrollees counts distinct customers holding an active enrollment.
func activeEnrollees(enrollments []models.Enrollment) int {
	seen := map[string]struct{}{}
	for _, e := range enrollments {
		if e.Status == models.EnrollmentActive {
			seen[e.CustomerID] = struct{}{}
		}
	}
	return len(seen)
}
