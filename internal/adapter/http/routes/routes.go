package routes

import (
	"context"
	"log"
	"strconv"

	_ "cityfuture/docs" // This will be auto-generated
	"cityfuture/internal/adapter/http/handlers"
	repository2 "cityfuture/internal/adapter/persistence/repository"
	"cityfuture/internal/domain/entities"
	"cityfuture/internal/infrastructure/clock"
	"cityfuture/internal/infrastructure/database"
	"cityfuture/internal/infrastructure/scheduler"
	"cityfuture/internal/infrastructure/seed"
	"cityfuture/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	clk := clock.NewSystemClock()

	orderRepo := repository2.NewConstructionOrderDynamoRepository(ddb)
	materialRepo := repository2.NewMaterialDynamoRepository(ddb)

	if err := seed.Materials(context.Background(), materialRepo, clk); err != nil {
		log.Printf("Material seeding failed: %v", err)
	}

	timeline := usecase.NewTimeline(orderRepo, clk)
	orderUseCase := usecase.NewConstructionOrderUseCase(orderRepo, materialRepo, entities.DefaultCatalog(), timeline, clk)
	materialUseCase := usecase.NewMaterialUseCase(materialRepo, clk)
	schedulerUseCase := usecase.NewSchedulerUseCase(orderRepo)

	// The daily trigger also runs the overdue sweep once at startup to catch
	// up on days the service was down.
	scheduler.NewDaily(schedulerUseCase, clk).Start(context.Background())

	orderHandler := handlers.NewConstructionOrderHandler(orderUseCase)
	materialHandler := handlers.NewMaterialHandler(materialUseCase)
	reportHandler := handlers.NewReportHandler(orderUseCase)
	schedulerHandler := handlers.NewSchedulerHandler(schedulerUseCase, clk)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConstructionRoutes(v1, orderHandler, materialHandler, reportHandler, schedulerHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
