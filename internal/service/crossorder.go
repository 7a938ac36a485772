package service

import (
	"context"
	"errors"

	"github.com/hugohenrick/erp-multiloja/internal/domain/order"
	"github.com/hugohenrick/erp-multiloja/internal/domain/settings"
	"github.com/hugohenrick/erp-multiloja/internal/domain/store"
)

// ErrCrossStoreOrdersDisabled indica que a loja de origem não permite
// pedidos entre lojas
var ErrCrossStoreOrdersDisabled = errors.New("pedidos entre lojas estão desabilitados para a loja de origem")

// CrossOrderService rastreia pedidos atendidos entre duas lojas, de forma
// independente do registro de venda subjacente
type CrossOrderService struct {
	orders   order.Repository
	stores   store.Repository
	settings settings.Repository
}

// NewCrossOrderService cria uma nova instância de CrossOrderService
func NewCrossOrderService(orders order.Repository, stores store.Repository, cfg settings.Repository) *CrossOrderService {
	return &CrossOrderService{
		orders:   orders,
		stores:   stores,
		settings: cfg,
	}
}

// CreateCrossStoreOrder registra um novo pedido entre lojas. A criação é
// bloqueada quando as configurações da loja de origem não permitem pedidos
// entre lojas.
func (s *CrossOrderService) CreateCrossStoreOrder(ctx context.Context, sourceStoreID, targetStoreID, orderID string) (*order.CrossStoreOrder, error) {
	if _, err := s.stores.FindByID(ctx, sourceStoreID); err != nil {
		return nil, err
	}
	if _, err := s.stores.FindByID(ctx, targetStoreID); err != nil {
		return nil, err
	}

	cfg, err := s.settings.FindByHeadquarters(ctx, sourceStoreID)
	if err != nil {
		return nil, err
	}
	if !cfg.AllowCrossStoreOrders {
		return nil, ErrCrossStoreOrdersDisabled
	}

	o := order.NewCrossStoreOrder(sourceStoreID, targetStoreID, orderID)
	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// UpdateCrossStoreOrderStatus aplica uma transição de status sobre um
// pedido, rejeitando transições fora da máquina de estados
func (s *CrossOrderService) UpdateCrossStoreOrderStatus(ctx context.Context, id string, next order.Status) (*order.CrossStoreOrder, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.UpdateStatus(next); err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// CrossStoreOrders retorna todos os pedidos entre lojas
func (s *CrossOrderService) CrossStoreOrders(ctx context.Context) ([]*order.CrossStoreOrder, error) {
	return s.orders.FindAll(ctx)
}

// CrossStoreOrdersForStore retorna os pedidos em que a loja participa como
// origem ou destino
func (s *CrossOrderService) CrossStoreOrdersForStore(ctx context.Context, storeID string) ([]*order.CrossStoreOrder, error) {
	return s.orders.FindForStore(ctx, storeID)
}
