package routes

import (
	"github.com/Rabsxd/water-reminder-app-sub001/config"
	"github.com/Rabsxd/water-reminder-app-sub001/controllers"
	"github.com/Rabsxd/water-reminder-app-sub001/middlewares"
	"github.com/Rabsxd/water-reminder-app-sub001/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	db := config.DB
	logg := config.GetLogger()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(db)
	if err != nil {
		logg.WithError(err).Warn("push service unavailable, reminders degrade to in-app only")
		push = nil
	}
	services.InitAlertDeps(db, hub, push)

	hydration := services.NewHydrationService(db, config.LoadHydrationConfig())
	analytics := services.NewAnalyticsService(db)
	reminders := services.NewReminderService(hydration, push)

	hydrationCtl := controllers.NewHydrationController(hydration, hub)
	settingsCtl := controllers.NewSettingsController(hydration)
	analyticsCtl := controllers.NewAnalyticsController(analytics)
	reminderCtl := controllers.NewReminderController(reminders)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("/profile", controllers.DeleteAccount)
	}

	hyd := r.Group("/hydration")
	hyd.Use(middlewares.AuthMiddleware())
	{
		hyd.GET("/today", hydrationCtl.Today)
		hyd.POST("/entries", hydrationCtl.AddEntry)
		hyd.DELETE("/entries/:id", hydrationCtl.RemoveEntry)
		hyd.POST("/reset", hydrationCtl.Reset)
		hyd.GET("/settings", settingsCtl.Get)
		hyd.PUT("/settings", settingsCtl.Update)
		hyd.GET("/target/recommended", settingsCtl.RecommendedTarget)
	}

	an := r.Group("/analytics")
	an.Use(middlewares.AuthMiddleware())
	{
		an.GET("/summary", analyticsCtl.GetSummary)
		an.GET("/streak", analyticsCtl.GetStreak)
		an.GET("/history", analyticsCtl.GetHistory)
		an.GET("/history/export", analyticsCtl.ExportHistory)
		an.POST("/report/weekly", analyticsCtl.SendWeeklyReport)
	}

	rem := r.Group("/reminders")
	rem.Use(middlewares.AuthMiddleware())
	{
		rem.GET("/status", reminderCtl.Status)
		rem.POST("/send", reminderCtl.Send)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/events", realtimeCtl.EventsWS)
	}

	if push != nil {
		deviceCtl := controllers.NewDeviceController(push)
		devCtl := controllers.NewDevController(push)

		dev := r.Group("/devices")
		dev.Use(middlewares.AuthMiddleware())
		{
			dev.POST("", deviceCtl.Register)
			dev.POST("/toggle", deviceCtl.Toggle)
		}

		dbg := r.Group("/dev")
		dbg.Use(middlewares.AuthMiddleware())
		{
			dbg.POST("/push", devCtl.PushTest)
		}
	}

	return r
}
