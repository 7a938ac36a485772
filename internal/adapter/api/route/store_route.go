package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/api/controller"
)

// SetupStoreRoutes configura as rotas do diretório de lojas, das
// configurações de sincronização e das sincronizações
func SetupStoreRoutes(router *gin.RouterGroup, storeController *controller.StoreController, settingsController *controller.SettingsController, syncController *controller.SyncController) {
	storeRouter := router.Group("/stores")
	{
		storeRouter.POST("", storeController.Create)
		storeRouter.GET("", storeController.List)
		storeRouter.GET("/:id", storeController.GetByID)
		storeRouter.GET("/:id/children", storeController.GetChildren)
		storeRouter.GET("/:id/hierarchy", storeController.GetHierarchy)
		storeRouter.DELETE("/:id", storeController.Delete)

		// Configurações de sincronização da matriz
		storeRouter.GET("/:id/settings", settingsController.Get)
		storeRouter.PATCH("/:id/settings", settingsController.Update)

		// Sincronização da matriz para as filiais diretas
		storeRouter.POST("/:id/sync/products", syncController.SyncProducts)
		storeRouter.POST("/:id/sync/members", syncController.SyncMembers)
		storeRouter.POST("/:id/sync/suppliers", syncController.SyncSuppliers)
	}
}
