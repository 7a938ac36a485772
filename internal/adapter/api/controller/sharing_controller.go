package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-multiloja/internal/domain/sharing"
	"github.com/hugohenrick/erp-multiloja/internal/domain/store"
	"github.com/hugohenrick/erp-multiloja/internal/service"
)

// SharingController gerencia as requisições de compartilhamento de
// recursos entre lojas
type SharingController struct {
	sharingService *service.SharingService
}

// NewSharingController cria uma nova instância de SharingController
func NewSharingController(sharingService *service.SharingService) *SharingController {
	return &SharingController{
		sharingService: sharingService,
	}
}

// Share compartilha um recurso com outras lojas
// @Summary Compartilha um recurso
// @Description Expõe um recurso da loja de origem para as lojas de destino; a operação é idempotente
// @Tags sharing
// @Accept json
// @Produce json
// @Param share body dto.ShareResourceRequest true "Dados do compartilhamento"
// @Success 200 {object} dto.SharedResourceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shared-resources [post]
func (c *SharingController) Share(ctx *gin.Context) {
	var request dto.ShareResourceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	res, err := c.sharingService.ShareResource(ctx, request.ResourceID, sharing.ResourceType(request.ResourceType), request.SourceStoreID, request.TargetStoreIDs)
	if err != nil {
		if errors.Is(err, sharing.ErrInvalidResourceType) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tipo de recurso inválido", request.ResourceType))
			return
		}
		if errors.Is(err, store.ErrStoreNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Loja de origem não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao compartilhar recurso", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSharedResourceResponse(res))
}

// StopSharing remove a visibilidade de uma loja sobre um recurso
// @Summary Interrompe um compartilhamento
// @Description Remove a loja de destino do compartilhamento; o registro é excluído quando fica sem destinos
// @Tags sharing
// @Produce json
// @Param id path string true "Chave do recurso compartilhado"
// @Param storeId path string true "ID da loja de destino"
// @Param source_store_id query string true "ID da loja de origem"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shared-resources/{id}/targets/{storeId} [delete]
func (c *SharingController) StopSharing(ctx *gin.Context) {
	resourceID := ctx.Param("id")
	targetStoreID := ctx.Param("storeId")
	sourceStoreID := ctx.Query("source_store_id")
	if sourceStoreID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Parâmetro source_store_id não informado", ""))
		return
	}

	err := c.sharingService.StopSharingResource(ctx, resourceID, sourceStoreID, targetStoreID)
	if err != nil {
		if errors.Is(err, sharing.ErrResourceNotFound) || errors.Is(err, sharing.ErrTargetNotShared) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Compartilhamento não encontrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao interromper compartilhamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Compartilhamento removido com sucesso", nil))
}

// List lista todos os recursos compartilhados
// @Summary Lista os recursos compartilhados
// @Tags sharing
// @Produce json
// @Success 200 {object} dto.SharedResourceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shared-resources [get]
func (c *SharingController) List(ctx *gin.Context) {
	resources, err := c.sharingService.AllSharedResources(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar recursos compartilhados", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSharedResourceListResponse(resources))
}

// ListForStore lista os recursos visíveis para uma loja
// @Summary Lista os recursos visíveis para a loja
// @Description Retorna os recursos compartilhados com a loja, não os que ela expõe
// @Tags sharing
// @Produce json
// @Param id path string true "ID da loja"
// @Success 200 {object} dto.SharedResourceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores/{id}/shared-resources [get]
func (c *SharingController) ListForStore(ctx *gin.Context) {
	resources, err := c.sharingService.SharedResourcesForStore(ctx, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar recursos compartilhados", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSharedResourceListResponse(resources))
}

// CreateRequest registra uma solicitação de compartilhamento
// @Summary Solicita o compartilhamento de um recurso
// @Description A loja solicitante pede que a loja alvo compartilhe o recurso; a solicitação nasce pendente
// @Tags sharing
// @Accept json
// @Produce json
// @Param request body dto.ShareRequestRequest true "Dados da solicitação"
// @Success 201 {object} dto.ShareRequestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /share-requests [post]
func (c *SharingController) CreateRequest(ctx *gin.Context) {
	var request dto.ShareRequestRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	req, err := c.sharingService.CreateShareRequest(ctx, request.ResourceID, sharing.ResourceType(request.ResourceType), request.ResourceName, request.RequestingStoreID, request.TargetStoreID)
	if err != nil {
		if errors.Is(err, sharing.ErrInvalidResourceType) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tipo de recurso inválido", request.ResourceType))
			return
		}
		if errors.Is(err, store.ErrStoreNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Loja não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar solicitação", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToShareRequestResponse(req))
}

// ProcessRequest resolve uma solicitação pendente
// @Summary Aprova ou rejeita uma solicitação
// @Description A aprovação faz a loja alvo compartilhar o recurso com a solicitante; solicitações resolvidas não podem ser reprocessadas
// @Tags sharing
// @Accept json
// @Produce json
// @Param id path string true "ID da solicitação"
// @Param decision body dto.ProcessShareRequestRequest true "Decisão (approved ou rejected)"
// @Success 200 {object} dto.ShareRequestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /share-requests/{id}/process [post]
func (c *SharingController) ProcessRequest(ctx *gin.Context) {
	var request dto.ProcessShareRequestRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	req, err := c.sharingService.ProcessShareRequest(ctx, ctx.Param("id"), sharing.RequestStatus(request.Decision))
	if err != nil {
		if errors.Is(err, sharing.ErrRequestNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Solicitação não encontrada", ""))
			return
		}
		if errors.Is(err, sharing.ErrRequestAlreadyResolved) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Solicitação já foi resolvida", ""))
			return
		}
		if errors.Is(err, sharing.ErrInvalidDecision) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Decisão inválida", request.Decision))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao processar solicitação", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShareRequestResponse(req))
}

// ListRequests lista todas as solicitações de compartilhamento
// @Summary Lista as solicitações de compartilhamento
// @Tags sharing
// @Produce json
// @Success 200 {object} dto.ShareRequestListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /share-requests [get]
func (c *SharingController) ListRequests(ctx *gin.Context) {
	requests, err := c.sharingService.AllShareRequests(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar solicitações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShareRequestListResponse(requests))
}

// ListRequestsForStore lista as solicitações em que a loja participa
// @Summary Lista as solicitações da loja
// @Description Retorna as solicitações em que a loja é a solicitante ou o alvo
// @Tags sharing
// @Produce json
// @Param id path string true "ID da loja"
// @Success 200 {object} dto.ShareRequestListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores/{id}/share-requests [get]
func (c *SharingController) ListRequestsForStore(ctx *gin.Context) {
	requests, err := c.sharingService.ShareRequestsForStore(ctx, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar solicitações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShareRequestListResponse(requests))
}
