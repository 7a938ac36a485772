package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-multiloja/internal/domain/settings"
)

// SettingsController gerencia as requisições relacionadas às configurações
// de sincronização de uma matriz
type SettingsController struct {
	settingsRepository settings.Repository
}

// NewSettingsController cria uma nova instância de SettingsController
func NewSettingsController(settingsRepository settings.Repository) *SettingsController {
	return &SettingsController{
		settingsRepository: settingsRepository,
	}
}

// Get busca as configurações de sincronização da matriz
// @Summary Busca as configurações de sincronização
// @Description Retorna as configurações da matriz; o registro padrão é criado na primeira leitura
// @Tags settings
// @Produce json
// @Param id path string true "ID da matriz"
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores/{id}/settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	headquartersID := ctx.Param("id")

	s, err := c.settingsRepository.FindByHeadquarters(ctx, headquartersID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar configurações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(s))
}

// Update aplica uma atualização parcial nas configurações da matriz
// @Summary Atualiza as configurações de sincronização
// @Description Aplica apenas os campos informados; os demais são preservados
// @Tags settings
// @Accept json
// @Produce json
// @Param id path string true "ID da matriz"
// @Param settings body dto.SettingsUpdateRequest true "Campos a atualizar"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores/{id}/settings [patch]
func (c *SettingsController) Update(ctx *gin.Context) {
	headquartersID := ctx.Param("id")

	var request dto.SettingsUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	s, err := c.settingsRepository.Update(ctx, headquartersID, request.ToUpdateFields())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar configurações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(s))
}
