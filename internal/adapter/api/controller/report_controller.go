package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-multiloja/internal/service"
)

// ReportController gerencia as requisições de relatórios entre lojas
type ReportController struct {
	reportService *service.ReportService
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// parsePeriod lê os parâmetros start_date e end_date (formato 2006-01-02).
// O fim do período é estendido até o último instante do dia para manter o
// intervalo inclusivo nas duas pontas.
func parsePeriod(ctx *gin.Context) (time.Time, time.Time, bool) {
	startStr := ctx.Query("start_date")
	endStr := ctx.Query("end_date")

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Parâmetro start_date inválido", startStr))
		return time.Time{}, time.Time{}, false
	}

	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Parâmetro end_date inválido", endStr))
		return time.Time{}, time.Time{}, false
	}

	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end, true
}

// Sales retorna o relatório de vendas por loja no período
// @Summary Relatório de vendas por loja
// @Description Vendas de cada loja no período, com bucket por dia
// @Tags reports
// @Produce json
// @Param start_date query string true "Início do período (2006-01-02)"
// @Param end_date query string true "Fim do período (2006-01-02)"
// @Success 200 {array} service.StoreSalesReport
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales [get]
func (c *ReportController) Sales(ctx *gin.Context) {
	start, end, ok := parsePeriod(ctx)
	if !ok {
		return
	}

	reports, err := c.reportService.AllStoreSalesData(ctx, start, end)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar relatório de vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, reports)
}

// Inventory retorna o relatório de estoque por loja
// @Summary Relatório de estoque por loja
// @Description Classificação de estoque de cada produto de cada loja
// @Tags reports
// @Produce json
// @Success 200 {array} service.StoreInventoryReport
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/inventory [get]
func (c *ReportController) Inventory(ctx *gin.Context) {
	reports, err := c.reportService.AllStoreInventoryData(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar relatório de estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, reports)
}

// AggregatedSales retorna as vendas consolidadas da rede por dia
// @Summary Relatório consolidado de vendas
// @Description Vendas da rede por dia, com a contribuição de cada loja
// @Tags reports
// @Produce json
// @Param start_date query string true "Início do período (2006-01-02)"
// @Param end_date query string true "Fim do período (2006-01-02)"
// @Success 200 {array} service.AggregatedSalesReport
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales/aggregated [get]
func (c *ReportController) AggregatedSales(ctx *gin.Context) {
	start, end, ok := parsePeriod(ctx)
	if !ok {
		return
	}

	reports, err := c.reportService.AggregatedSalesReport(ctx, start, end)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar relatório consolidado", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, reports)
}

// ProductRanking retorna o ranking de produtos da rede
// @Summary Ranking de produtos da rede
// @Description Produtos ordenados pela quantidade vendida somada entre as lojas
// @Tags reports
// @Produce json
// @Success 200 {array} service.ProductRanking
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/products/ranking [get]
func (c *ReportController) ProductRanking(ctx *gin.Context) {
	ranking, err := c.reportService.CrossStoreProductRanking(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar ranking de produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, ranking)
}
