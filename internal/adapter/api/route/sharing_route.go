package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/api/controller"
)

// SetupSharingRoutes configura as rotas de compartilhamento de recursos e
// de solicitações de compartilhamento
func SetupSharingRoutes(router *gin.RouterGroup, sharingController *controller.SharingController) {
	sharedRouter := router.Group("/shared-resources")
	{
		sharedRouter.POST("", sharingController.Share)
		sharedRouter.GET("", sharingController.List)
		sharedRouter.DELETE("/:id/targets/:storeId", sharingController.StopSharing)
	}

	requestRouter := router.Group("/share-requests")
	{
		requestRouter.POST("", sharingController.CreateRequest)
		requestRouter.GET("", sharingController.ListRequests)
		requestRouter.POST("/:id/process", sharingController.ProcessRequest)
	}

	// Visões por loja
	router.GET("/stores/:id/shared-resources", sharingController.ListForStore)
	router.GET("/stores/:id/share-requests", sharingController.ListRequestsForStore)
}
