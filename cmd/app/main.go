package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wander/cmd/fx/advisor_fx"
	"wander/cmd/fx/catalog_fx"
	"wander/cmd/fx/planner_fx"
	"wander/internal/api/controllers"
	"wander/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		catalog_fx.Module,
		advisor_fx.Module,
		planner_fx.Module,

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
	plannerController *controllers.PlannerController,
	catalogController *controllers.CatalogController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, plannerController, catalogController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	catalogController *controllers.CatalogController) {

	plansGroup := r.Group("/plans")
	plansGroup.POST("", plannerController.CreatePlanHandler)

	catalogGroup := r.Group("/catalog")
	catalogGroup.GET("/flights", catalogController.ListFlightsHandler)
	catalogGroup.GET("/hotels", catalogController.ListHotelsHandler)
	catalogGroup.GET("/activities", catalogController.ListActivitiesHandler)
}
