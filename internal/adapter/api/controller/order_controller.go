package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-multiloja/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-multiloja/internal/domain/order"
	"github.com/hugohenrick/erp-multiloja/internal/domain/store"
	"github.com/hugohenrick/erp-multiloja/internal/service"
)

// OrderController gerencia as requisições de pedidos entre lojas
type OrderController struct {
	orderService *service.CrossOrderService
}

// NewOrderController cria uma nova instância de OrderController
func NewOrderController(orderService *service.CrossOrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

// Create registra um novo pedido entre lojas
// @Summary Cria um pedido entre lojas
// @Description Vincula uma venda existente a um atendimento entre duas lojas; exige que a loja de origem permita pedidos entre lojas
// @Tags cross-store-orders
// @Accept json
// @Produce json
// @Param order body dto.CrossStoreOrderRequest true "Dados do pedido"
// @Success 201 {object} dto.CrossStoreOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cross-store-orders [post]
func (c *OrderController) Create(ctx *gin.Context) {
	var request dto.CrossStoreOrderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	o, err := c.orderService.CreateCrossStoreOrder(ctx, request.SourceStoreID, request.TargetStoreID, request.OrderID)
	if err != nil {
		if errors.Is(err, service.ErrCrossStoreOrdersDisabled) {
			ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Pedidos entre lojas estão desabilitados para a loja de origem", ""))
			return
		}
		if errors.Is(err, store.ErrStoreNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Loja não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar pedido", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCrossStoreOrderResponse(o))
}

// UpdateStatus aplica uma transição de status sobre um pedido
// @Summary Atualiza o status de um pedido
// @Description Transições permitidas: pending→processing, pending→cancelled, processing→completed
// @Tags cross-store-orders
// @Accept json
// @Produce json
// @Param id path string true "ID do pedido"
// @Param status body dto.CrossStoreOrderStatusRequest true "Novo status"
// @Success 200 {object} dto.CrossStoreOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cross-store-orders/{id}/status [patch]
func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	var request dto.CrossStoreOrderStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	o, err := c.orderService.UpdateCrossStoreOrderStatus(ctx, ctx.Param("id"), order.Status(request.Status))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Pedido não encontrado", ""))
			return
		}
		if errors.Is(err, order.ErrInvalidStatus) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Status de pedido inválido", request.Status))
			return
		}
		if errors.Is(err, order.ErrInvalidTransition) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Transição de status inválida", request.Status))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar pedido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCrossStoreOrderResponse(o))
}

// List lista todos os pedidos entre lojas
// @Summary Lista os pedidos entre lojas
// @Tags cross-store-orders
// @Produce json
// @Success 200 {object} dto.CrossStoreOrderListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cross-store-orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	orders, err := c.orderService.CrossStoreOrders(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar pedidos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCrossStoreOrderListResponse(orders))
}

// ListForStore lista os pedidos em que a loja participa
// @Summary Lista os pedidos da loja
// @Description Retorna os pedidos em que a loja é a origem ou o destino
// @Tags cross-store-orders
// @Produce json
// @Param id path string true "ID da loja"
// @Success 200 {object} dto.CrossStoreOrderListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores/{id}/cross-store-orders [get]
func (c *OrderController) ListForStore(ctx *gin.Context) {
	orders, err := c.orderService.CrossStoreOrdersForStore(ctx, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar pedidos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCrossStoreOrderListResponse(orders))
}
