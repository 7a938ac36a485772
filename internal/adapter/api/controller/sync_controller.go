package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-multiloja/internal/domain/store"
	"github.com/hugohenrick/erp-multiloja/internal/service"
)

// SyncController gerencia as requisições de sincronização da matriz para
// as filiais
type SyncController struct {
	syncService *service.SyncService
}

// NewSyncController cria uma nova instância de SyncController
func NewSyncController(syncService *service.SyncService) *SyncController {
	return &SyncController{
		syncService: syncService,
	}
}

// SyncProducts sincroniza o catálogo de produtos para as filiais
// @Summary Sincroniza produtos
// @Description Sobrescreve o catálogo de produtos das filiais diretas com o da matriz
// @Tags sync
// @Produce json
// @Param id path string true "ID da matriz"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores/{id}/sync/products [post]
func (c *SyncController) SyncProducts(ctx *gin.Context) {
	c.runSync(ctx, c.syncService.SyncProducts)
}

// SyncMembers sincroniza os clientes fidelizados para as filiais
// @Summary Sincroniza clientes
// @Description Sobrescreve os clientes fidelizados das filiais diretas com os da matriz
// @Tags sync
// @Produce json
// @Param id path string true "ID da matriz"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores/{id}/sync/members [post]
func (c *SyncController) SyncMembers(ctx *gin.Context) {
	c.runSync(ctx, c.syncService.SyncMembers)
}

// SyncSuppliers sincroniza os fornecedores para as filiais
// @Summary Sincroniza fornecedores
// @Description Sobrescreve os fornecedores das filiais diretas com os da matriz
// @Tags sync
// @Produce json
// @Param id path string true "ID da matriz"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores/{id}/sync/suppliers [post]
func (c *SyncController) SyncSuppliers(ctx *gin.Context) {
	c.runSync(ctx, c.syncService.SyncSuppliers)
}

// runSync executa a sincronização e mapeia o resultado para a resposta
// HTTP. Categoria desabilitada não é erro: a operação é um no-op.
func (c *SyncController) runSync(ctx *gin.Context, sync func(context.Context, string) (*service.SyncResult, error)) {
	headquartersID := ctx.Param("id")

	result, err := sync(ctx, headquartersID)
	if err != nil {
		if errors.Is(err, store.ErrStoreNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Loja não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao sincronizar", err.Error()))
		return
	}

	message := "Sincronização concluída"
	if !result.Enabled {
		message = "Sincronização desabilitada para esta categoria"
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(message, result))
}
