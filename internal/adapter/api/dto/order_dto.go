package dto

import (
	"time"

	"github.com/hugohenrick/erp-multiloja/internal/domain/order"
)

// CrossStoreOrderRequest representa a estrutura de dados para criação de
// pedido entre lojas
type CrossStoreOrderRequest struct {
	SourceStoreID string `json:"source_store_id" binding:"required"`
	TargetStoreID string `json:"target_store_id" binding:"required"`
	OrderID       string `json:"order_id" binding:"required"`
}

// CrossStoreOrderStatusRequest representa a mudança de status de um pedido
type CrossStoreOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CrossStoreOrderResponse representa a estrutura de resposta para pedido
// entre lojas
type CrossStoreOrderResponse struct {
	ID            string    `json:"id"`
	SourceStoreID string    `json:"source_store_id"`
	TargetStoreID string    `json:"target_store_id"`
	OrderID       string    `json:"order_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CrossStoreOrderListResponse representa a resposta de listagem de pedidos
// entre lojas
type CrossStoreOrderListResponse struct {
	Orders     []CrossStoreOrderResponse `json:"orders"`
	TotalCount int                       `json:"total_count"`
}

// ToCrossStoreOrderResponse converte um modelo de domínio em uma resposta DTO
func ToCrossStoreOrderResponse(o *order.CrossStoreOrder) CrossStoreOrderResponse {
	return CrossStoreOrderResponse{
		ID:            o.ID,
		SourceStoreID: o.SourceStoreID,
		TargetStoreID: o.TargetStoreID,
		OrderID:       o.OrderID,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// ToCrossStoreOrderListResponse converte uma lista de pedidos em uma
// resposta DTO
func ToCrossStoreOrderListResponse(orders []*order.CrossStoreOrder) CrossStoreOrderListResponse {
	responses := make([]CrossStoreOrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, ToCrossStoreOrderResponse(o))
	}
	return CrossStoreOrderListResponse{
		Orders:     responses,
		TotalCount: len(responses),
	}
}
