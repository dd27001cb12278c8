package routes

import (
	"time"

	"driveacademy/handlers"
	"driveacademy/middleware"
	"driveacademy/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the endpoints that need no authentication.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", handlers.HealthHandler)

	api := r.Group("/api")
	{
		api.GET("/programs", hb.Program.ListProgramsHandler)
		api.GET("/programs/:id", hb.Program.GetProgramHandler)
	}
}

// RegisterCustomerRoutes registers customer sign-up, login and self-service endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.POST("/register", hb.Customer.RegisterHandler)
		api.POST("/login", hb.Customer.LoginHandler)

		// Protected routes (require a customer token).
		api.Use(middleware.CustomerAuthMiddleware(hb.CustomerRepo))
		api.POST("/logout", hb.Customer.LogoutHandler)
		api.GET("/me", hb.Customer.GetProfileHandler)
		api.PUT("/me", hb.Customer.UpdateProfileHandler)
		api.PUT("/me/password", hb.Customer.ChangePasswordHandler)
		api.GET("/me/sessions", hb.Session.ListMySessionsHandler)
		api.GET("/me/enrollments", hb.Enrollment.ListMyEnrollmentsHandler)
		api.GET("/me/enrollments/:id", hb.Enrollment.GetMyEnrollmentHandler)
		api.GET("/me/payments", hb.Payment.ListMyPaymentsHandler)
		api.GET("/me/feedback", hb.Feedback.ListMyFeedbackHandler)
		api.GET("/me/materials", hb.Material.ListMaterialsForCustomerHandler)
		api.POST("/me/materials/:id/download", hb.Material.RegisterDownloadHandler)
	}

	sessions := r.Group("/api/sessions")
	{
		sessions.Use(middleware.CustomerAuthMiddleware(hb.CustomerRepo))
		sessions.GET("/available", hb.Session.ListAvailableSessionsHandler)
		sessions.POST("/:id/enroll", hb.Session.EnrollHandler)
		sessions.DELETE("/:id/enroll", hb.Session.CancelEnrollmentHandler)
	}
}

// RegisterStaffRoutes registers the back-office endpoints. Routes below the
// auth middleware require a staff token; account management and destructive
// operations additionally require the ADMIN role.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.POST("/login", hb.Staff.LoginHandler)

		api.Use(middleware.StaffAuthMiddleware(hb.StaffRepo))
		api.POST("/logout", hb.Staff.LogoutHandler)
		api.GET("/me", hb.Staff.GetProfileHandler)
		api.PUT("/me", hb.Staff.UpdateProfileHandler)
		api.PUT("/me/password", hb.Staff.ChangePasswordHandler)

		// Session scheduling.
		api.GET("/sessions", hb.Session.ListSessionsHandler)
		api.GET("/sessions/:id", hb.Session.GetSessionHandler)
		api.POST("/sessions", hb.Session.CreateSessionHandler)
		api.PUT("/sessions/:id", hb.Session.UpdateSessionHandler)
		api.DELETE("/sessions/:id", hb.Session.DeleteSessionHandler)

		// Customer records.
		api.GET("/customers", hb.Customer.ListCustomersHandler)
		api.GET("/customers/:id", hb.Customer.GetCustomerHandler)
		api.PUT("/customers/:id", hb.Customer.UpdateCustomerHandler)

		// Enrollments.
		api.GET("/enrollments", hb.Enrollment.ListEnrollmentsHandler)
		api.GET("/enrollments/:id", hb.Enrollment.GetEnrollmentHandler)
		api.POST("/enrollments", hb.Enrollment.CreateEnrollmentHandler)
		api.PUT("/enrollments/:id", hb.Enrollment.UpdateEnrollmentHandler)
		api.DELETE("/enrollments/:id", hb.Enrollment.DeleteEnrollmentHandler)

		// Payments.
		api.GET("/payments", hb.Payment.ListPaymentsHandler)
		api.GET("/payments/:id", hb.Payment.GetPaymentHandler)
		api.POST("/payments", hb.Payment.RecordPaymentHandler)
		api.PUT("/payments/:id", hb.Payment.UpdatePaymentHandler)

		// Programs.
		api.POST("/programs", hb.Program.CreateProgramHandler)
		api.PUT("/programs/:id", hb.Program.UpdateProgramHandler)

		// Training materials.
		api.GET("/materials", hb.Material.ListMaterialsHandler)
		api.GET("/materials/:id", hb.Material.GetMaterialHandler)
		api.POST("/materials", hb.Material.CreateMaterialHandler)
		api.PUT("/materials/:id", hb.Material.UpdateMaterialHandler)
		api.DELETE("/materials/:id", hb.Material.DeleteMaterialHandler)

		// Feedback.
		api.GET("/feedback", hb.Feedback.ListFeedbackHandler)
		api.GET("/feedback/:id", hb.Feedback.GetFeedbackHandler)
		api.POST("/feedback", hb.Feedback.CreateFeedbackHandler)
		api.PUT("/feedback/:id", hb.Feedback.UpdateFeedbackHandler)
		api.DELETE("/feedback/:id", hb.Feedback.DeleteFeedbackHandler)

		// Reports.
		api.GET("/reports/summary", hb.Report.SummaryHandler)

		// Admin-only operations.
		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		admin.POST("/accounts", hb.Staff.RegisterHandler)
		admin.GET("/accounts", hb.Staff.ListStaffHandler)
		admin.GET("/accounts/:id", hb.Staff.GetStaffHandler)
		admin.DELETE("/accounts/:id", hb.Staff.DeleteStaffHandler)
		admin.DELETE("/customers/:id", hb.Customer.DeleteCustomerHandler)
		admin.DELETE("/payments/:id", hb.Payment.DeletePaymentHandler)
		admin.DELETE("/programs/:id", hb.Program.DeleteProgramHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
}
