package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/api/controller"
)

// SetupReportRoutes configura as rotas de relatórios entre lojas
func SetupReportRoutes(router *gin.RouterGroup, reportController *controller.ReportController) {
	reportRouter := router.Group("/reports")
	{
		reportRouter.GET("/sales", reportController.Sales)
		reportRouter.GET("/sales/aggregated", reportController.AggregatedSales)
		reportRouter.GET("/inventory", reportController.Inventory)
		reportRouter.GET("/products/ranking", reportController.ProductRanking)
	}
}
