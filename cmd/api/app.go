package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hugohenrick/erp-multiloja/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/api/route"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/kvstore"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/repository"
	"github.com/hugohenrick/erp-multiloja/internal/infrastructure/database"
	"github.com/hugohenrick/erp-multiloja/internal/service"
	"github.com/hugohenrick/erp-multiloja/pkg/keylock"
	"github.com/hugohenrick/erp-multiloja/pkg/logger"
)

// App encapsula as dependências da aplicação
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	log    logger.Logger

	storeController    *controller.StoreController
	settingsController *controller.SettingsController
	syncController     *controller.SyncController
	sharingController  *controller.SharingController
	reportController   *controller.ReportController
	orderController    *controller.OrderController
}

// NewApp cria uma nova instância da aplicação com todas as dependências configuradas
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar ao banco de dados: %w", err)
	}

	if err := database.RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao executar migrações: %w", err)
	}

	kv := kvstore.NewPostgresStore(db)
	locks := keylock.New()

	storeRepo := repository.NewKVStoreDirectoryRepository(kv, locks)
	settingsRepo := repository.NewKVSettingsRepository(kv, locks)
	documentRepo := repository.NewKVDocumentRepository(kv, locks)
	sharingRepo := repository.NewKVSharingRepository(kv, locks)
	orderRepo := repository.NewKVOrderRepository(kv, locks)

	syncService := service.NewSyncService(storeRepo, settingsRepo, documentRepo, log, syncWorkersFromEnv())
	sharingService := service.NewSharingService(sharingRepo, storeRepo, documentRepo, log)
	reportService := service.NewReportService(storeRepo, documentRepo)
	orderService := service.NewCrossOrderService(orderRepo, storeRepo, settingsRepo)

	router := gin.Default()
	router.Use(cors.Default())

	return &App{
		router:             router,
		db:                 db,
		log:                log,
		storeController:    controller.NewStoreController(storeRepo),
		settingsController: controller.NewSettingsController(settingsRepo),
		syncController:     controller.NewSyncController(syncService),
		sharingController:  controller.NewSharingController(sharingService),
		reportController:   controller.NewReportController(reportService),
		orderController:    controller.NewOrderController(orderService),
	}, nil
}

// SetupRoutes registra todas as rotas da API
func (a *App) SetupRoutes(basePath string) {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := a.router.Group(basePath)
	route.SetupStoreRoutes(api, a.storeController, a.settingsController, a.syncController)
	route.SetupSharingRoutes(api, a.sharingController)
	route.SetupReportRoutes(api, a.reportController)
	route.SetupOrderRoutes(api, a.orderController)
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	a.log.Info("Servidor iniciando na porta " + port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

func syncWorkersFromEnv() int {
	if v := os.Getenv("SYNC_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
