package repository

import (
	"context"

	"github.com/hugohenrick/erp-multiloja/internal/adapter/kvstore"
	"github.com/hugohenrick/erp-multiloja/internal/domain/order"
	"github.com/hugohenrick/erp-multiloja/pkg/keylock"
)

// KVOrderRepository implementa a interface order.Repository sobre o
// armazenamento de documentos, usando a chave cross_store_orders
type KVOrderRepository struct {
	kv    kvstore.Store
	locks *keylock.KeyLock
}

// NewKVOrderRepository cria uma nova instância de KVOrderRepository
func NewKVOrderRepository(kv kvstore.Store, locks *keylock.KeyLock) *KVOrderRepository {
	return &KVOrderRepository{
		kv:    kv,
		locks: locks,
	}
}

// loadOrders lê todos os pedidos entre lojas
func (r *KVOrderRepository) loadOrders(ctx context.Context) ([]*order.CrossStoreOrder, error) {
	var orders []*order.CrossStoreOrder
	if _, err := getJSON(ctx, r.kv, keyCrossStoreOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Save implementa order.Repository.Save
func (r *KVOrderRepository) Save(ctx context.Context, o *order.CrossStoreOrder) error {
	r.locks.Lock(keyCrossStoreOrders)
	defer r.locks.Unlock(keyCrossStoreOrders)

	orders, err := r.loadOrders(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range orders {
		if existing.ID == o.ID {
			orders[i] = o
			replaced = true
			break
		}
	}
	if !replaced {
		orders = append(orders, o)
	}

	return setJSON(ctx, r.kv, keyCrossStoreOrders, orders)
}

// FindByID implementa order.Repository.FindByID
func (r *KVOrderRepository) FindByID(ctx context.Context, id string) (*order.CrossStoreOrder, error) {
	orders, err := r.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, order.ErrNotFound
}

// FindAll implementa order.Repository.FindAll
func (r *KVOrderRepository) FindAll(ctx context.Context) ([]*order.CrossStoreOrder, error) {
	return r.loadOrders(ctx)
}

// FindForStore implementa order.Repository.FindForStore
func (r *KVOrderRepository) FindForStore(ctx context.Context, storeID string) ([]*order.CrossStoreOrder, error) {
	orders, err := r.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	var related []*order.CrossStoreOrder
	for _, o := range orders {
		if o.SourceStoreID == storeID || o.TargetStoreID == storeID {
			related = append(related, o)
		}
	}
	return related, nil
}
