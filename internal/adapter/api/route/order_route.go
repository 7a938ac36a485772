package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/api/controller"
)

// SetupOrderRoutes configura as rotas de pedidos entre lojas
func SetupOrderRoutes(router *gin.RouterGroup, orderController *controller.OrderController) {
	orderRouter := router.Group("/cross-store-orders")
	{
		orderRouter.POST("", orderController.Create)
		orderRouter.GET("", orderController.List)
		orderRouter.PATCH("/:id/status", orderController.UpdateStatus)
	}

	// Visão por loja
	router.GET("/stores/:id/cross-store-orders", orderController.ListForStore)
}
