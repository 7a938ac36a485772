package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-multiloja/internal/domain/store"
)

// StoreController gerencia as requisições relacionadas ao diretório de lojas
type StoreController struct {
	storeRepository store.Repository
}

// NewStoreController cria uma nova instância de StoreController
func NewStoreController(storeRepository store.Repository) *StoreController {
	return &StoreController{
		storeRepository: storeRepository,
	}
}

// Create cria uma nova loja
// @Summary Cria uma nova loja
// @Description Cria uma nova loja na rede; o nível é derivado da loja matriz informada
// @Tags stores
// @Accept json
// @Produce json
// @Param store body dto.StoreRequest true "Dados da loja"
// @Success 201 {object} dto.StoreResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores [post]
func (c *StoreController) Create(ctx *gin.Context) {
	var request dto.StoreRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	s, err := store.NewStore(request.Name, request.Code, request.Address, request.Phone, request.Manager, request.ParentID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados da loja inválidos", err.Error()))
		return
	}

	if err := c.storeRepository.Create(ctx, s); err != nil {
		if errors.Is(err, store.ErrParentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Loja matriz informada não existe", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar loja", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToStoreResponse(s))
}

// List lista todas as lojas
// @Summary Lista as lojas
// @Description Lista todas as lojas do diretório
// @Tags stores
// @Produce json
// @Success 200 {object} dto.StoreListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores [get]
func (c *StoreController) List(ctx *gin.Context) {
	stores, err := c.storeRepository.FindAll(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar lojas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStoreListResponse(stores))
}

// GetByID busca uma loja pelo ID
// @Summary Busca uma loja pelo ID
// @Description Busca uma loja pelo seu ID
// @Tags stores
// @Produce json
// @Param id path string true "ID da loja"
// @Success 200 {object} dto.StoreResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores/{id} [get]
func (c *StoreController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	s, err := c.storeRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrStoreNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Loja não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar loja", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStoreResponse(s))
}

// GetChildren lista as filiais diretas de uma loja
// @Summary Lista as filiais diretas
// @Description Lista apenas as filiais diretas da loja, não a subárvore completa
// @Tags stores
// @Produce json
// @Param id path string true "ID da loja"
// @Success 200 {object} dto.StoreListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores/{id}/children [get]
func (c *StoreController) GetChildren(ctx *gin.Context) {
	id := ctx.Param("id")

	if _, err := c.storeRepository.FindByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrStoreNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Loja não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar loja", err.Error()))
		return
	}

	children, err := c.storeRepository.FindChildren(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar filiais", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStoreListResponse(children))
}

// GetHierarchy retorna o caminho da raiz até a loja
// @Summary Busca a hierarquia da loja
// @Description Retorna o caminho da raiz até a loja, com a raiz em primeiro
// @Tags stores
// @Produce json
// @Param id path string true "ID da loja"
// @Success 200 {object} dto.StoreListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores/{id}/hierarchy [get]
func (c *StoreController) GetHierarchy(ctx *gin.Context) {
	id := ctx.Param("id")

	hierarchy, err := c.storeRepository.FindHierarchy(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrStoreNotFound) || errors.Is(err, store.ErrParentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Loja não encontrada", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar hierarquia", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStoreListResponse(hierarchy))
}

// Delete remove uma loja
// @Summary Remove uma loja
// @Description Remove uma loja sem filiais; lojas com filiais diretas não podem ser removidas
// @Tags stores
// @Produce json
// @Param id path string true "ID da loja"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores/{id} [delete]
func (c *StoreController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.storeRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrStoreNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Loja não encontrada", ""))
			return
		}
		if errors.Is(err, store.ErrHasChildren) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Loja possui filiais vinculadas", "remova ou reatribua as filiais antes de excluir a loja"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir loja", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Loja excluída com sucesso", nil))
}
