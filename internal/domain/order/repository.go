package order

import (
	"context"
)

// Repository define a persistência dos pedidos entre lojas
type Repository interface {
	// Save grava um pedido entre lojas (cria ou substitui)
	Save(ctx context.Context, o *CrossStoreOrder) error

	// FindByID busca um pedido pelo ID
	FindByID(ctx context.Context, id string) (*CrossStoreOrder, error)

	// FindAll retorna todos os pedidos entre lojas
	FindAll(ctx context.Context) ([]*CrossStoreOrder, error)

	// FindForStore retorna os pedidos em que a loja participa como
	// origem ou destino
	FindForStore(ctx context.Context, storeID string) ([]*CrossStoreOrder, error)
}
