package routes

import (
	"cityfuture/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathConstructions = "/constructions"
	PathMaterials     = "/materials"
	PathReports       = "/reports"
	PathScheduler     = "/scheduler"
)

func addConstructionRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.ConstructionOrderHandler,
	materialHandler *handlers.MaterialHandler,
	reportHandler *handlers.ReportHandler,
	schedulerHandler *handlers.SchedulerHandler,
) {
	constructions := rg.Group(PathConstructions)
	{
		constructions.POST("", orderHandler.CreateOrder)
		constructions.POST("/validate", orderHandler.ValidateOrder)
		constructions.GET("", orderHandler.GetOrders)
		constructions.GET("/:id", orderHandler.GetOrderByID)
		constructions.PUT("/:id", orderHandler.UpdateOrder)
		constructions.DELETE("/:id", orderHandler.DeleteOrder)
	}

	materials := rg.Group(PathMaterials)
	{
		materials.POST("", materialHandler.CreateMaterial)
		materials.GET("", materialHandler.GetMaterials)
		materials.GET("/:id", materialHandler.GetMaterialByID)
		materials.PUT("/:id", materialHandler.UpdateMaterial)
		materials.DELETE("/:id", materialHandler.DeleteMaterial)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("", reportHandler.GetReport)
		reports.GET("/summary", reportHandler.GetProjectSummary)
		reports.GET("/end-date", reportHandler.GetProjectEndDate)
	}

	scheduler := rg.Group(PathScheduler)
	{
		scheduler.POST("/advance", schedulerHandler.Advance)
		scheduler.POST("/overdue", schedulerHandler.ProcessOverdue)
		scheduler.GET("/simulate", schedulerHandler.Simulate)
		scheduler.POST("/run", schedulerHandler.RunRange)
	}
}
