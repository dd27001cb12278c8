package models

import "time"

// ReportSummary is the aggregated view served to the staff reports dashboard.
type ReportSummary struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	TotalCustomers  int     `json:"totalCustomers"`
	NewCustomers    int     `json:"newCustomers"`
	TotalRevenue    float64 `json:"totalRevenue"`
	ActiveEnrollees int     `json:"activeEnrollees"`

	RevenueByMonth       []MonthlyRevenue   `json:"revenueByMonth"`
	EnrollmentsByProgram []ProgramCount     `json:"enrollmentsByProgram"`
	SessionsByType       map[string]int     `json:"sessionsByType"`
	SessionsByStatus     map[string]int     `json:"sessionsByStatus"`
	PaymentsByMethod     map[string]float64 `json:"paymentsByMethod"`
}

// MonthlyRevenue is completed-payment revenue bucketed by calendar month.
type MonthlyRevenue struct {
	Month   string  `json:"month"` // "2026-08"
	Revenue float64 `json:"revenue"`
}

// ProgramCount is the enrollment count for a single training program.
type ProgramCount struct {
	ProgramID   string `json:"programId"`
	ProgramName string `json:"programName"`
	Count       int    `json:"count"`
}
