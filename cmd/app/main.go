package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"campscan/cmd/fx/account_fx"
	"campscan/cmd/fx/activity_fx"
	"campscan/cmd/fx/controllers_fx"
	"campscan/cmd/fx/db_fx"
	"campscan/cmd/fx/event_fx"
	"campscan/cmd/fx/participant_fx"
	"campscan/cmd/fx/report_fx"
	"campscan/cmd/fx/scan_fx"
	"campscan/internal/api/controllers"
	"campscan/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		event_fx.Module,
		activity_fx.Module,
		participant_fx.Module,
		scan_fx.Module,
		report_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	eventController *controllers.EventController,
	activityController *controllers.ActivityController,
	participantController *controllers.ParticipantController,
	scanController *controllers.ScanController,
	reportController *controllers.ReportController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		eventController,
		activityController,
		participantController,
		scanController,
		reportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	eventController *controllers.EventController,
	activityController *controllers.ActivityController,
	participantController *controllers.ParticipantController,
	scanController *controllers.ScanController,
	reportController *controllers.ReportController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)

	admin := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.GET("/users", accountController.ListUsers)
	admin.PUT("/users/:id/role", accountController.UpdateUserRole)
	admin.DELETE("/users/:id", accountController.DeleteUser)

	events := r.Group("/events", middleware.JWTAuthMiddleware())
	events.GET("", eventController.ListEvents)
	events.GET("/:id", eventController.GetEvent)
	events.GET("/:id/report", reportController.GetEventReport)
	events.POST("", middleware.RoleMiddleware("admin"), eventController.CreateEvent)
	events.PUT("/:id/activate", middleware.RoleMiddleware("admin"), eventController.SetActiveEvent)
	events.POST("/:id/reset", middleware.RoleMiddleware("admin"), eventController.ResetEventData)
	events.POST("/:id/backfill-locations", middleware.RoleMiddleware("admin"), eventController.BackfillLocations)
	events.DELETE("/:id", middleware.RoleMiddleware("admin"), eventController.DeleteEvent)

	activities := r.Group("/activities", middleware.JWTAuthMiddleware())
	activities.GET("", activityController.ListActivities)
	activities.POST("", middleware.RoleMiddleware("admin"), activityController.CreateActivity)
	activities.PUT("/:id", middleware.RoleMiddleware("admin"), activityController.UpdateActivity)
	activities.DELETE("/:id", middleware.RoleMiddleware("admin"), activityController.DeleteActivity)

	participants := r.Group("/participants", middleware.JWTAuthMiddleware())
	participants.GET("", participantController.ListParticipants)
	participants.GET("/:id", participantController.GetParticipantDetail)
	participants.GET("/:id/current-activity", scanController.CurrentActivity)
	participants.POST("", participantController.CreateParticipant)
	participants.POST("/import", middleware.RoleMiddleware("admin"), participantController.ImportCsv)
	participants.PUT("/:id", participantController.UpdateParticipant)
	participants.DELETE("/:id", middleware.RoleMiddleware("admin"), participantController.DeleteParticipant)

	scans := r.Group("/scans", middleware.JWTAuthMiddleware())
	scans.POST("", scanController.RecordScan)
	scans.GET("/lookup", scanController.LookupParticipant)
}
