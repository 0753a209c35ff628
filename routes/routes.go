package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Liyana-shirin/hospital-management-system-frontent/config"
	"github.com/Liyana-shirin/hospital-management-system-frontent/handlers"
	"github.com/Liyana-shirin/hospital-management-system-frontent/middleware"
	"github.com/Liyana-shirin/hospital-management-system-frontent/services"
	"github.com/Liyana-shirin/hospital-management-system-frontent/session"
)

func SetupRoutes(router *gin.Engine, api *services.Client, store session.Store, monitor *services.Monitor, cfg *config.Config) {
	// Initialize handlers
	homeHandler := handlers.NewHomeHandler(store, monitor)
	authHandler := handlers.NewAuthHandler(api, store)
	doctorHandler := handlers.NewDoctorHandler(api, store, cfg)
	bookingHandler := handlers.NewBookingHandler(api, store)
	patientHandler := handlers.NewPatientHandler(api, store, cfg)
	adminHandler := handlers.NewAdminHandler(api, store, cfg)

	router.GET("/health", homeHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public pages
	router.GET("/", homeHandler.Home)
	router.GET("/home", homeHandler.Home)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/register", authHandler.ShowSignup)
	router.POST("/register", authHandler.Signup)
	router.GET("/logout", authHandler.Logout)
	router.GET("/unauthorized", homeHandler.Unauthorized)

	// Any signed-in role
	protected := router.Group("")
	protected.Use(middleware.RequireSession(store))
	{
		protected.GET("/doctors/find", doctorHandler.FindDoctors)
		protected.GET("/book-appointment/:doctorId", bookingHandler.Show)
		protected.POST("/book-appointment/:doctorId", bookingHandler.Submit)

		// Patient pages
		patient := protected.Group("/patient")
		patient.Use(middleware.RequireRole("patient"))
		{
			patient.GET("/dashboard", patientHandler.Dashboard)
			patient.GET("/profile/edit", patientHandler.ShowEditProfile)
			patient.POST("/profile/edit", patientHandler.UpdateProfile)
			patient.POST("/appointments/:id/cancel", patientHandler.CancelAppointment)
			patient.POST("/appointments/:id/delete", patientHandler.DeleteAppointment)
			patient.POST("/account/delete", patientHandler.DeleteAccount)
		}

		// Doctor pages
		doctor := protected.Group("/doctor")
		doctor.Use(middleware.RequireRole("doctor"))
		{
			doctor.GET("/dashboard", doctorHandler.Dashboard)
			doctor.GET("/profile/edit", doctorHandler.ShowEditProfile)
			doctor.POST("/profile/edit", doctorHandler.UpdateProfile)
			doctor.POST("/appointments/:id/accept", doctorHandler.Accept)
			doctor.POST("/appointments/:id/reject", doctorHandler.Reject)
			doctor.POST("/appointments/:id/complete", doctorHandler.Complete)
			doctor.POST("/appointments/:id/delete", doctorHandler.DeleteAppointment)
			doctor.POST("/profile/delete", doctorHandler.DeleteProfile)
		}

		// Admin pages
		admin := protected.Group("/admin")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.POST("/doctors/:id/approve", adminHandler.ApproveDoctor)
			admin.POST("/doctors/:id/delete", adminHandler.DeleteDoctor)
			admin.POST("/patients/:id/delete", adminHandler.DeletePatient)
			admin.GET("/appointments/export", adminHandler.ExportAppointments)
		}
	}
}
