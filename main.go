// File: driveacademy/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"driveacademy/config"
	"driveacademy/database"
	customerRepoPkg "driveacademy/database/repository/customer"
	enrollmentRepoPkg "driveacademy/database/repository/enrollment"
	feedbackRepoPkg "driveacademy/database/repository/feedback"
	materialRepoPkg "driveacademy/database/repository/material"
	paymentRepoPkg "driveacademy/database/repository/payment"
	programRepoPkg "driveacademy/database/repository/program"
	sessionRepoPkg "driveacademy/database/repository/session"
	staffRepoPkg "driveacademy/database/repository/staff"
	"driveacademy/handlers"
	"driveacademy/middleware"
	"driveacademy/routes"
	"driveacademy/services/customer"
	"driveacademy/services/enrollment"
	"driveacademy/services/feedback"
	"driveacademy/services/material"
	"driveacademy/services/payment"
	"driveacademy/services/program"
	"driveacademy/services/report"
	"driveacademy/services/session"
	"driveacademy/services/staff"
	"driveacademy/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	custRepo := customerRepoPkg.NewMongoCustomerRepo()
	stfRepo := staffRepoPkg.NewMongoStaffRepo()
	sessRepo := sessionRepoPkg.NewMongoSessionRepo()
	enrRepo := enrollmentRepoPkg.NewMongoEnrollmentRepo()
	payRepo := paymentRepoPkg.NewMongoPaymentRepo()
	progRepo := programRepoPkg.NewMongoProgramRepo()
	matRepo := materialRepoPkg.NewMongoMaterialRepo()
	fbRepo := feedbackRepoPkg.NewMongoFeedbackRepo()

	// services.
	customerService := &customer.DefaultCustomerService{Repo: custRepo}
	staffService := &staff.DefaultStaffService{Repo: stfRepo}
	sessionService := &session.DefaultSessionService{
		Repo:         sessRepo,
		CustomerRepo: custRepo,
		Slots:        session.SlotValidator{},
	}
	enrollmentService := &enrollment.DefaultEnrollmentService{
		Repo:         enrRepo,
		CustomerRepo: custRepo,
		ProgramRepo:  progRepo,
	}
	paymentService := &payment.DefaultPaymentService{
		Repo:           payRepo,
		EnrollmentRepo: enrRepo,
		CustomerRepo:   custRepo,
		ProgramRepo:    progRepo,
	}
	programService := &program.DefaultProgramService{
		Repo:           progRepo,
		EnrollmentRepo: enrRepo,
	}
	materialService := &material.DefaultMaterialService{
		Repo:           matRepo,
		EnrollmentRepo: enrRepo,
	}
	feedbackService := &feedback.DefaultFeedbackService{
		Repo:         fbRepo,
		SessionRepo:  sessRepo,
		CustomerRepo: custRepo,
		StaffRepo:    stfRepo,
	}
	reportService := &report.DefaultReportService{
		CustomerRepo:   custRepo,
		EnrollmentRepo: enrRepo,
		PaymentRepo:    payRepo,
		ProgramRepo:    progRepo,
		SessionRepo:    sessRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CustomerRepo: custRepo,
		StaffRepo:    stfRepo,

		Customer:   &handlers.CustomerHandler{Service: customerService},
		Staff:      &handlers.StaffHandler{Service: staffService},
		Session:    &handlers.SessionHandler{Service: sessionService},
		Enrollment: &handlers.EnrollmentHandler{Service: enrollmentService},
		Payment:    &handlers.PaymentHandler{Service: paymentService},
		Program:    &handlers.ProgramHandler{Service: programService},
		Material:   &handlers.MaterialHandler{Service: materialService},
		Feedback:   &handlers.FeedbackHandler{Service: feedbackService},
		Report:     &handlers.ReportHandler{Service: reportService},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
