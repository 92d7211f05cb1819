package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"optiqa/cmd/fx/booking_fx"
	"optiqa/cmd/fx/controllers_fx"
	"optiqa/cmd/fx/db_fx"
	"optiqa/cmd/fx/insight_fx"
	"optiqa/cmd/fx/wizard_fx"
	"optiqa/internal/api/controllers"
	"optiqa/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}

	app := fx.New(
		db_fx.Module,
		wizard_fx.Module,
		insight_fx.Module,
		booking_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
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
	wizardController *controllers.WizardController,
	bookingController *controllers.BookingController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, wizardController, bookingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	wizardController *controllers.WizardController,
	bookingController *controllers.BookingController) {

	r.POST("/wizard/start", wizardController.StartWizardHandler)

	wizardGroup := r.Group("/wizard")
	wizardGroup.Use(middleware.SessionTokenMiddleware())
	wizardGroup.GET("/state", wizardController.GetStateHandler)
	wizardGroup.POST("/answer", wizardController.SubmitAnswerHandler)
	wizardGroup.POST("/advance", wizardController.AdvanceHandler)
	wizardGroup.POST("/back", wizardController.RetreatHandler)
	wizardGroup.GET("/insights", wizardController.GetInsightsHandler)
	wizardGroup.GET("/report", wizardController.GetReportHandler)

	bookingGroup := r.Group("/booking")
	bookingGroup.Use(middleware.SessionTokenMiddleware())
	bookingGroup.GET("/days", bookingController.ListDaysHandler)
	bookingGroup.GET("/slots", bookingController.ListSlotsHandler)
	bookingGroup.POST("/select", bookingController.SelectSlotHandler)
	bookingGroup.GET("/confirmation", bookingController.GetConfirmationHandler)
}
